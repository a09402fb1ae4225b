// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vcard serializes normalized contacts as vCard 3.0 documents.
package vcard

import (
	"strings"

	"github.com/pdiddy/cardgen/internal/normalize"
	"github.com/pdiddy/cardgen/pkg/types"
)

const (
	lineBreak = "\r\n"
	version   = "3.0"
)

// textEscaper escapes TEXT values per RFC 2426 section 4.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`;`, `\;`,
	"\r\n", `\n`,
	"\n", `\n`,
)

// escape applies RFC 2426 TEXT escaping. It is used for FN, N, TITLE and
// ORG, so those lines differ from the raw field value when it contains a
// backslash, comma, semicolon or newline. URL, EMAIL and TEL are written as is.
func escape(s string) string {
	return textEscaper.Replace(s)
}

// Serialize renders c as a vCard. Lines are joined with CRLF and the
// document has no trailing line break. Optional properties are omitted when
// empty; each social link becomes its own work URL after the website.
func Serialize(c types.Contact) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:" + version,
		"FN:" + escape(c.Name.Full),
		"N:" + escape(c.Name.Last) + ";" + escape(c.Name.First),
	}

	if c.Title != "" {
		lines = append(lines, "TITLE:"+escape(c.Title))
	}
	if c.Organization != "" {
		lines = append(lines, "ORG:"+escape(c.Organization))
	}
	if mobile := c.Contact.Mobile(); mobile != "" {
		lines = append(lines, "TEL;TYPE=CELL:"+normalize.Phone(mobile))
	}
	if c.Contact.Email != "" {
		lines = append(lines, "EMAIL:"+c.Contact.Email)
	}
	if c.Contact.Website != "" {
		lines = append(lines, "URL;TYPE=WORK:"+c.Contact.Website)
	}
	for _, link := range c.Social {
		if link.URL == "" {
			continue
		}
		lines = append(lines, "URL;TYPE=WORK:"+link.URL)
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, lineBreak)
}
