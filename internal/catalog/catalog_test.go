// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cardgen/pkg/types"
)

func openStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(types.CatalogConfig{DBPath: filepath.Join(dir, "index", "contacts.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, dir
}

func sampleContacts() []types.Contact {
	return []types.Contact{
		{
			Name:         types.Name{First: "Nicola", Last: "Forster", Full: "Nicola Forster"},
			Title:        "Co-Founder",
			Organization: "Team Ensemble",
			Contact: types.ContactInfo{
				Phone:   &types.Phone{Mobile: "+41 79 123 45 67"},
				Email:   "n@x.ch",
				Website: "https://team-ensemble.ch/",
			},
			Social: types.Social{{Platform: "linkedin", URL: "https://linkedin.com/in/nf"}},
			Slug:   "nicola.forster",
		},
		{
			Name:         types.Name{First: "Anna", Last: "Muster", Full: "Anna Muster"},
			Organization: "Acme 100%",
			Contact:      types.ContactInfo{Email: "anna@acme.test"},
			Slug:         "anna",
		},
	}
}

func TestContactIDStable(t *testing.T) {
	assert.Equal(t, ContactID("nicola.forster"), ContactID("nicola.forster"))
	assert.NotEqual(t, ContactID("a"), ContactID("b"))
	assert.Len(t, ContactID("a"), 36)
}

func TestNewEntry(t *testing.T) {
	e := NewEntry(sampleContacts()[0])
	assert.Equal(t, ContactID("nicola.forster"), e.ID)
	assert.Equal(t, "Nicola Forster", e.FullName)
	assert.Equal(t, "41791234567", e.Phone)
	assert.Equal(t, "Nicola-Forster.vcf", e.VCardFilename)
}

func TestIndexAndLookup(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	summary, err := s.Index(ctx, sampleContacts())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Indexed)
	assert.Equal(t, 0, summary.Removed)

	all, err := s.Lookup(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "anna", all[0].Slug, "ordered by slug")
	assert.Equal(t, "nicola.forster", all[1].Slug)
	assert.Equal(t, types.Social{{Platform: "linkedin", URL: "https://linkedin.com/in/nf"}}, all[1].Social)
	assert.Nil(t, all[0].Social)

	tests := []struct {
		query string
		want  []string
	}{
		{"forster", []string{"nicola.forster"}},
		{"ENSEMBLE", []string{"nicola.forster"}},
		{"co-founder", []string{"nicola.forster"}},
		{"acme.test", []string{"anna"}},
		{"100%", []string{"anna"}},
		{"%", []string{"anna"}},
		{"_", nil},
		{"nobody", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := s.Lookup(ctx, tt.query, 0)
			require.NoError(t, err)
			var slugs []string
			for _, e := range got {
				slugs = append(slugs, e.Slug)
			}
			assert.Equal(t, tt.want, slugs)
		})
	}
}

func TestLookupLimit(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	_, err := s.Index(ctx, sampleContacts())
	require.NoError(t, err)

	got, err := s.Lookup(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestIndexReplaces(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	_, err := s.Index(ctx, sampleContacts())
	require.NoError(t, err)

	renamed := sampleContacts()[:1]
	renamed[0].Title = "Founder"
	summary, err := s.Index(ctx, renamed)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Indexed)
	assert.Equal(t, 2, summary.Removed)

	all, err := s.Lookup(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Founder", all[0].Title)
}

func TestIndexSlugCollision(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	cs := sampleContacts()
	cs[1].Slug = cs[0].Slug

	summary, err := s.Index(ctx, cs)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Indexed)

	all, err := s.Lookup(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Anna Muster", all[0].FullName, "later contact wins")
}

func TestExport(t *testing.T) {
	s, dir := openStore(t)
	ctx := context.Background()
	_, err := s.Index(ctx, sampleContacts())
	require.NoError(t, err)

	jsonPath := filepath.Join(dir, "export.json")
	require.NoError(t, s.ExportJSON(ctx, jsonPath))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []Entry
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON, 2)
	assert.Equal(t, "anna", fromJSON[0].Slug)

	yamlPath := filepath.Join(dir, "export.yaml")
	require.NoError(t, s.ExportYAML(ctx, yamlPath))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "linkedin: https://linkedin.com/in/nf")
	var fromYAML []Entry
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "https://linkedin.com/in/nf", fromYAML[1].Social.Get("linkedin"))
}

func TestExportEmpty(t *testing.T) {
	s, dir := openStore(t)
	path := filepath.Join(dir, "export.json")
	require.NoError(t, s.ExportJSON(context.Background(), path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
