// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vcard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cardgen/pkg/types"
)

func full() types.Contact {
	return types.Contact{
		Name:         types.Name{First: "Nicola", Last: "Forster", Full: "Nicola Forster"},
		Title:        "Co-Founder",
		Organization: "Team Ensemble",
		Contact: types.ContactInfo{
			Phone:   &types.Phone{Mobile: "+41 (79) 123 45 67"},
			Email:   "n@x.ch",
			Website: "https://team-ensemble.ch/",
		},
		Social: types.Social{
			{Platform: "linkedin", URL: "https://linkedin.com/in/nf"},
			{Platform: "mastodon", URL: "https://mastodon.social/@nf"},
		},
	}
}

func TestSerializeFull(t *testing.T) {
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Nicola Forster",
		"N:Forster;Nicola",
		"TITLE:Co-Founder",
		"ORG:Team Ensemble",
		"TEL;TYPE=CELL:41791234567",
		"EMAIL:n@x.ch",
		"URL;TYPE=WORK:https://team-ensemble.ch/",
		"URL;TYPE=WORK:https://linkedin.com/in/nf",
		"URL;TYPE=WORK:https://mastodon.social/@nf",
		"END:VCARD",
	}, "\r\n")

	assert.Equal(t, want, Serialize(full()))
}

func TestSerializeMinimal(t *testing.T) {
	c := types.Contact{Name: types.Name{First: "A", Last: "B", Full: "A B"}}
	got := Serialize(c)

	assert.Equal(t, "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:A B\r\nN:B;A\r\nEND:VCARD", got)
	assert.False(t, strings.HasSuffix(got, "\r\n"))
}

func TestSerializeStructure(t *testing.T) {
	cases := map[string]types.Contact{
		"full":    full(),
		"minimal": {Name: types.Name{First: "A", Last: "B", Full: "A B"}},
		"blank":   {},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			lines := strings.Split(Serialize(c), "\r\n")
			require.GreaterOrEqual(t, len(lines), 5)
			assert.Equal(t, "BEGIN:VCARD", lines[0])
			assert.Equal(t, "VERSION:3.0", lines[1])
			assert.Equal(t, "FN:"+c.Name.Full, lines[2])
			assert.Equal(t, "N:"+c.Name.Last+";"+c.Name.First, lines[3])
			assert.Equal(t, "END:VCARD", lines[len(lines)-1])
		})
	}
}

func TestSerializeSocialLinks(t *testing.T) {
	c := full()
	c.Contact.Website = ""
	c.Social = append(c.Social, types.SocialLink{Platform: "github", URL: ""})

	var urls []string
	for _, l := range strings.Split(Serialize(c), "\r\n") {
		if u, ok := strings.CutPrefix(l, "URL;TYPE=WORK:"); ok {
			urls = append(urls, u)
		}
	}
	assert.Equal(t, []string{"https://linkedin.com/in/nf", "https://mastodon.social/@nf"}, urls)
}

func TestSerializeEmptyPhoneBlock(t *testing.T) {
	c := full()
	c.Contact.Phone = &types.Phone{}
	assert.NotContains(t, Serialize(c), "TEL")

	c.Contact.Phone = nil
	assert.NotContains(t, Serialize(c), "TEL")
}

func TestSerializeEscapesText(t *testing.T) {
	c := types.Contact{
		Name:         types.Name{First: "Anna", Last: "Muster; Jr.", Full: "Anna Muster, Jr."},
		Organization: `Foo\Bar`,
		Title:        "Lead\nDesign",
	}
	got := Serialize(c)
	assert.Contains(t, got, `FN:Anna Muster\, Jr.`)
	assert.Contains(t, got, `N:Muster\; Jr.;Anna`)
	assert.Contains(t, got, `ORG:Foo\\Bar`)
	assert.Contains(t, got, `TITLE:Lead\nDesign`)
}

func TestSerializeSkipsFalsySocialValues(t *testing.T) {
	var c types.Contact
	require.NoError(t, yaml.Unmarshal([]byte(`name: {first: A, last: B, full: A B}
social:
  twitter:
  linkedin: https://l/x
  github: false
`), &c))

	card := Serialize(c)
	assert.True(t, strings.HasSuffix(card, "\r\nURL;TYPE=WORK:https://l/x\r\nEND:VCARD"), card)
	assert.NotContains(t, card, "URL;TYPE=WORK:false")
	assert.Equal(t, 1, strings.Count(card, "URL;"))
}
