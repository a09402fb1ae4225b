// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site writes the generated output tree: one directory per contact
// holding its page and card, copied static assets, and the hosting marker.
package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	// PageFile is the name of each contact's HTML page.
	PageFile = "index.html"
	// MarkerFile tells GitHub Pages to skip Jekyll processing.
	MarkerFile = ".nojekyll"
)

// Writer owns an output directory.
type Writer struct {
	root string
}

// New returns a Writer for the output directory root.
func New(root string) *Writer {
	return &Writer{root: root}
}

// Root returns the output directory.
func (w *Writer) Root() string { return w.root }

// Reset removes the output tree and recreates it empty.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.root); err != nil {
		return fmt.Errorf("removing output directory %s: %w", w.root, err)
	}
	if err := os.MkdirAll(w.root, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", w.root, err)
	}
	return nil
}

// CopyAssets copies the staticDir tree into the output root. A missing
// staticDir is not an error. It reports whether anything was copied.
func (w *Writer) CopyAssets(staticDir string) (bool, error) {
	if staticDir == "" {
		return false, nil
	}
	info, err := os.Stat(staticDir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking static directory %s: %w", staticDir, err)
	}
	if !info.IsDir() {
		return false, fmt.Errorf("static path %s is not a directory", staticDir)
	}
	if err := copyDir(staticDir, w.root); err != nil {
		return false, fmt.Errorf("copying static assets: %w", err)
	}
	return true, nil
}

// WriteContact creates root/slug/ and writes the page and the card file
// into it. It returns the contact's directory.
func (w *Writer) WriteContact(slug, page, cardName, card string) (string, error) {
	dir := filepath.Join(w.root, slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := writeFile(filepath.Join(dir, PageFile), []byte(page)); err != nil {
		return "", err
	}
	if err := writeFile(filepath.Join(dir, cardName), []byte(card)); err != nil {
		return "", err
	}
	return dir, nil
}

// WriteMarker writes the empty marker file at the output root.
func (w *Writer) WriteMarker() error {
	return writeFile(filepath.Join(w.root, MarkerFile), nil)
}

// writeFile writes data to a temporary file in the destination directory
// and renames it into place.
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cardgen-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file for %s: %w", path, closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}
	return nil
}

// copyDir recursively copies src into dst, creating dst if needed.
func copyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
