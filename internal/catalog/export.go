// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// ExportYAML writes every catalog entry to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	entries, err := s.Lookup(ctx, "", exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes every catalog entry to path as indented JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	entries, err := s.Lookup(ctx, "", exportLimit)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
