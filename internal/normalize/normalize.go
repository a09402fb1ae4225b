// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize fills defaults and derives computed fields for contacts.
package normalize

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/cardgen/pkg/types"
)

// Contact returns the normalized form of rec. Organization and website are
// filled from d when empty, the full name is derived from first and last
// when empty, and the slug falls back to the source filename. Name parts
// and title are NFC-normalized. Phone, Social and Extra are shared with
// the input, not copied.
func Contact(rec types.Record, d types.Defaults) types.Contact {
	c := rec.Contact

	c.Name.First = norm.NFC.String(c.Name.First)
	c.Name.Last = norm.NFC.String(c.Name.Last)
	c.Name.Full = norm.NFC.String(c.Name.Full)
	c.Title = norm.NFC.String(c.Title)

	if c.Name.Full == "" {
		c.Name.Full = c.Name.First + " " + c.Name.Last
	}
	if c.Organization == "" {
		c.Organization = d.Organization
	}
	if c.Contact.Website == "" {
		c.Contact.Website = d.Website
	}
	if c.Slug == "" {
		c.Slug = Slug(rec.Path)
	}
	return c
}

// Slug returns the base filename of path with its final extension removed:
// "data/nicola.forster.yml" becomes "nicola.forster".
func Slug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WebsiteDisplay strips a leading http:// or https:// and one trailing
// slash from url.
func WebsiteDisplay(url string) string {
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		url = rest
	} else {
		url = strings.TrimPrefix(url, "http://")
	}
	return strings.TrimSuffix(url, "/")
}

// VCardFilename returns "{first}-{last}.vcf". Names are used as-is.
func VCardFilename(c types.Contact) string {
	return c.Name.First + "-" + c.Name.Last + ".vcf"
}

// Phone keeps only the ASCII digits of s, dropping "+", spaces,
// parentheses and any other formatting.
func Phone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// IsInternational reports whether the raw phone number carries a leading
// "+" country prefix.
func IsInternational(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "+")
}
