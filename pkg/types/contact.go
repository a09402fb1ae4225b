// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// Contact holds one person's record as read from a data file and, after
// normalization, the values used to render the page and the card.
// Optional scalars use the empty string for "absent"; optional nested
// levels are pointers.
type Contact struct {
	// Name holds the person's name parts.
	Name Name `json:"name" yaml:"name"`

	// Title is the job title (e.g. "Co-Founder").
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Organization is the employer; filled from Defaults when empty.
	Organization string `json:"organization,omitempty" yaml:"organization,omitempty"`

	// Contact holds phone, email and website.
	Contact ContactInfo `json:"contact" yaml:"contact"`

	// Social lists profile links in the order they appear in the file.
	Social Social `json:"social,omitempty" yaml:"social,omitempty"`

	// Slug names the output subdirectory. Derived from the filename when empty.
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`

	// Bio is optional Markdown shown on the page.
	Bio string `json:"bio,omitempty" yaml:"bio,omitempty"`

	// Extra carries any other top-level keys through to the template.
	Extra map[string]any `json:"extra,omitempty" yaml:",inline"`
}

// Name holds the parts of a contact's name.
type Name struct {
	First       string `json:"first" yaml:"first"`
	Last        string `json:"last" yaml:"last"`
	Full        string `json:"full,omitempty" yaml:"full,omitempty"`
	Credentials string `json:"credentials,omitempty" yaml:"credentials,omitempty"`
}

// ContactInfo holds the reachable channels of a contact.
type ContactInfo struct {
	Phone   *Phone `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// Phone holds phone numbers by kind.
type Phone struct {
	Mobile string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
}

// Mobile returns the mobile number, or "" when no phone block is present.
func (c ContactInfo) Mobile() string {
	if c.Phone == nil {
		return ""
	}
	return c.Phone.Mobile
}

// SocialLink is one platform → profile URL entry.
type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}

// Social is an ordered list of profile links. In YAML it is written as a
// mapping of platform name to URL; decoding keeps the mapping's order.
type Social []SocialLink

// Get returns the URL for platform, or "" if it is not listed.
func (s Social) Get(platform string) string {
	for _, l := range s {
		if l.Platform == platform {
			return l.URL
		}
	}
	return ""
}

// UnmarshalYAML decodes a platform → URL mapping into file order.
func (s *Social) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: social must be a mapping of platform to URL", node.Line)
	}
	links := make(Social, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var platform string
		if err := node.Content[i].Decode(&platform); err != nil {
			return fmt.Errorf("decoding social platform: %w", err)
		}
		url, err := socialURL(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("decoding social URL for %s: %w", platform, err)
		}
		links = append(links, SocialLink{Platform: platform, URL: url})
	}
	*s = links
	return nil
}

// socialURL decodes a social value. Falsy scalars (null, false, zero)
// decode to "" so the link is treated as absent.
func socialURL(n *yaml.Node) (string, error) {
	switch n.ShortTag() {
	case "!!null":
		return "", nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", err
		}
		if !b {
			return "", nil
		}
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return "", err
		}
		if f == 0 {
			return "", nil
		}
	}
	var url string
	if err := n.Decode(&url); err != nil {
		return "", err
	}
	return url, nil
}

// MarshalYAML writes the links back as a mapping, preserving order.
func (s Social) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, l := range s {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.Platform},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: l.URL},
		)
	}
	return node, nil
}

// Record pairs a decoded contact with the file it came from.
type Record struct {
	// Path is the source file path.
	Path string

	// Contact is the decoded, not yet normalized, contact.
	Contact Contact
}
