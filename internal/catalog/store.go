// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps normalized contacts in a SQLite database for lookup
// and export.
package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cardgen/internal/normalize"
	"github.com/pdiddy/cardgen/pkg/types"
)

const defaultMaxResults = 20

// idNamespace scopes contact IDs so the same slug always maps to the same ID.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/pdiddy/cardgen/contacts"))

// ContactID returns the stable catalog ID for a slug.
func ContactID(slug string) string {
	return uuid.NewSHA1(idNamespace, []byte(slug)).String()
}

// Entry is one catalog row.
type Entry struct {
	ID            string       `json:"id" yaml:"id"`
	Slug          string       `json:"slug" yaml:"slug"`
	FullName      string       `json:"full_name" yaml:"full_name"`
	Title         string       `json:"title,omitempty" yaml:"title,omitempty"`
	Organization  string       `json:"organization,omitempty" yaml:"organization,omitempty"`
	Email         string       `json:"email,omitempty" yaml:"email,omitempty"`
	Phone         string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website       string       `json:"website,omitempty" yaml:"website,omitempty"`
	VCardFilename string       `json:"vcard_filename" yaml:"vcard_filename"`
	Social        types.Social `json:"social,omitempty" yaml:"social,omitempty"`
}

// NewEntry builds a catalog row from a normalized contact.
func NewEntry(c types.Contact) Entry {
	return Entry{
		ID:            ContactID(c.Slug),
		Slug:          c.Slug,
		FullName:      c.Name.Full,
		Title:         c.Title,
		Organization:  c.Organization,
		Email:         c.Contact.Email,
		Phone:         normalize.Phone(c.Contact.Mobile()),
		Website:       c.Contact.Website,
		VCardFilename: normalize.VCardFilename(c),
		Social:        c.Social,
	}
}

// Store manages the catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the catalog database at cfg.DBPath and creates the
// schema if it does not exist.
func Open(cfg types.CatalogConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS contacts (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			title TEXT,
			organization TEXT,
			email TEXT,
			phone TEXT,
			website TEXT,
			vcard_filename TEXT,
			social TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contacts_organization ON contacts(organization)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IndexSummary holds counts from an indexing run.
type IndexSummary struct {
	// Indexed counts distinct slugs written.
	Indexed int
	// Removed counts rows present before the run.
	Removed int
}

// Index replaces the catalog contents with contacts in one transaction.
// Later contacts win on slug collisions, matching the site build.
func (s *Store) Index(ctx context.Context, contacts []types.Contact) (IndexSummary, error) {
	var summary IndexSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM contacts`)
	if err != nil {
		return summary, fmt.Errorf("clearing contacts: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		summary.Removed = int(n)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO contacts
		(id, slug, full_name, title, organization, email, phone, website, vcard_filename, social)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	seen := make(map[string]bool)
	for _, c := range contacts {
		e := NewEntry(c)
		social, err := json.Marshal(e.Social)
		if err != nil {
			return summary, fmt.Errorf("encoding social links for %s: %w", e.Slug, err)
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.Slug, e.FullName, e.Title, e.Organization,
			e.Email, e.Phone, e.Website, e.VCardFilename, string(social)); err != nil {
			return summary, fmt.Errorf("inserting %s: %w", e.Slug, err)
		}
		seen[e.Slug] = true
	}
	summary.Indexed = len(seen)

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing: %w", err)
	}
	return summary, nil
}

// Lookup returns contacts whose name, organization, title or email contains
// query, case-insensitively, ordered by slug. An empty query matches all.
// limit <= 0 uses the store default.
func (s *Store) Lookup(ctx context.Context, query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = s.maxResults
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"

	rows, err := s.db.QueryContext(ctx, `SELECT id, slug, full_name, title, organization, email,
			phone, website, vcard_filename, social
		FROM contacts
		WHERE lower(full_name) LIKE ?1 ESCAPE '\'
			OR lower(coalesce(organization, '')) LIKE ?1 ESCAPE '\'
			OR lower(coalesce(title, '')) LIKE ?1 ESCAPE '\'
			OR lower(coalesce(email, '')) LIKE ?1 ESCAPE '\'
		ORDER BY slug
		LIMIT ?2`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var social string
		if err := rows.Scan(&e.ID, &e.Slug, &e.FullName, &e.Title, &e.Organization, &e.Email,
			&e.Phone, &e.Website, &e.VCardFilename, &social); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		if social != "" && social != "null" {
			if err := json.Unmarshal([]byte(social), &e.Social); err != nil {
				return nil, fmt.Errorf("decoding social links for %s: %w", e.Slug, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
