// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package records loads contact records from a directory of YAML files.
// Each file holds one contact; files are returned in filename order.
package records

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cardgen/pkg/types"
)

// ErrDataDirMissing is returned when the records directory does not exist.
var ErrDataDirMissing = errors.New("data directory not found")

// extensions lists the filename suffixes recognized as record files.
var extensions = []string{".yml", ".yaml"}

// IsRecordFile reports whether name carries a recognized record extension.
func IsRecordFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// CheckDir returns ErrDataDirMissing (wrapped with the path) when dir does
// not exist or is not a directory.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrDataDirMissing, dir)
		}
		return fmt.Errorf("checking data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrDataDirMissing, dir)
	}
	return nil
}

// List returns the paths of record files in dir, sorted by filename.
// Subdirectories are not descended into.
func List(dir string) ([]string, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading data directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsRecordFile(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Read decodes a single record file.
func Read(path string) (types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Record{}, fmt.Errorf("reading record %s: %w", path, err)
	}
	var c types.Contact
	if err := yaml.Unmarshal(data, &c); err != nil {
		return types.Record{}, fmt.Errorf("parsing record %s: %w", filepath.Base(path), err)
	}
	return types.Record{Path: path, Contact: c}, nil
}

// Load reads every record file in dir. An empty directory yields an empty
// slice and no error. The first unreadable or malformed file aborts the load.
func Load(dir string) ([]types.Record, error) {
	paths, err := List(dir)
	if err != nil {
		return nil, err
	}

	recs := make([]types.Record, 0, len(paths))
	for _, p := range paths {
		r, err := Read(p)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}
