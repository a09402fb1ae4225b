// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render produces a contact's HTML page from a template.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/pdiddy/cardgen/internal/normalize"
	"github.com/pdiddy/cardgen/pkg/types"
)

// ErrTemplateMissing is returned when the page template file does not exist.
var ErrTemplateMissing = errors.New("template not found")

// Page is the data a template executes against: the normalized contact's
// fields plus values derived for display. Templates address fields the way
// the record file names them, e.g. {{.Name.Full}} or {{.Contact.Email}}.
type Page struct {
	Name         types.Name
	Title        string
	Organization string
	Contact      types.ContactInfo
	Social       types.Social
	Slug         string
	Bio          string
	Extra        map[string]any

	// WebsiteDisplay is the website without scheme or trailing slash.
	WebsiteDisplay string

	// VCardFilename is the card file written next to the page.
	VCardFilename string

	// BioHTML is Bio rendered from Markdown.
	BioHTML template.HTML
}

// Renderer executes a compiled page template. Create one per build.
type Renderer struct {
	tpl *template.Template
	md  goldmark.Markdown
}

// CheckTemplate returns ErrTemplateMissing (wrapped with the path) when the
// template file does not exist.
func CheckTemplate(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrTemplateMissing, path)
		}
		return fmt.Errorf("checking template %s: %w", path, err)
	}
	return nil
}

// New reads and compiles the template at path.
func New(path string) (*Renderer, error) {
	if err := CheckTemplate(path); err != nil {
		return nil, err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}
	return Parse(filepath.Base(path), string(src))
}

// Parse compiles template source. name is used in error messages.
func Parse(name, src string) (*Renderer, error) {
	funcs := template.FuncMap{
		"phoneDigits":   normalize.Phone,
		"international": normalize.IsInternational,
		"social": func(s types.Social, platform string) string {
			return s.Get(platform)
		},
	}
	tpl, err := template.New(name).Funcs(funcs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &Renderer{tpl: tpl, md: goldmark.New()}, nil
}

// NewPage builds the template data for c.
func (r *Renderer) NewPage(c types.Contact) (Page, error) {
	p := Page{
		Name:           c.Name,
		Title:          c.Title,
		Organization:   c.Organization,
		Contact:        c.Contact,
		Social:         c.Social,
		Slug:           c.Slug,
		Bio:            c.Bio,
		Extra:          c.Extra,
		WebsiteDisplay: normalize.WebsiteDisplay(c.Contact.Website),
		VCardFilename:  normalize.VCardFilename(c),
	}
	if c.Bio != "" {
		var buf bytes.Buffer
		if err := r.md.Convert([]byte(c.Bio), &buf); err != nil {
			return Page{}, fmt.Errorf("rendering bio for %s: %w", c.Slug, err)
		}
		// goldmark escapes raw HTML unless WithUnsafe is set.
		p.BioHTML = template.HTML(buf.String()) // #nosec G203
	}
	return p, nil
}

// Render executes the template for c and returns the HTML.
func (r *Renderer) Render(c types.Contact) (string, error) {
	p, err := r.NewPage(c)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering page for %s: %w", c.Slug, err)
	}
	return buf.String(), nil
}
