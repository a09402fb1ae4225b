// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs the contact site pipeline: load records, normalize,
// render pages, serialize cards, and write the output tree.
package build

import (
	"fmt"
	"io"

	"github.com/pdiddy/cardgen/internal/normalize"
	"github.com/pdiddy/cardgen/internal/records"
	"github.com/pdiddy/cardgen/internal/render"
	"github.com/pdiddy/cardgen/internal/site"
	"github.com/pdiddy/cardgen/internal/vcard"
	"github.com/pdiddy/cardgen/pkg/types"
)

// Result holds the outcome of a build run.
type Result struct {
	// Written lists the slugs of contacts written, in build order.
	Written []string

	// AssetsCopied reports whether a static tree was copied.
	AssetsCopied bool
}

// Count returns the number of contacts written.
func (r Result) Count() int {
	return len(r.Written)
}

// Preflight checks that the data directory and the template exist. It
// touches nothing on disk.
func Preflight(cfg types.BuildConfig) error {
	if err := records.CheckDir(cfg.DataDir); err != nil {
		return err
	}
	return render.CheckTemplate(cfg.TemplatePath)
}

// Run performs a full build. Configuration errors are reported before the
// output directory is touched. Any later error aborts the run and may leave
// the output incomplete. Progress goes to w and warnings to warn. An empty
// data directory is not an error: Run warns and returns an empty Result.
func Run(cfg types.BuildConfig, w, warn io.Writer) (Result, error) {
	var result Result

	if err := Preflight(cfg); err != nil {
		return result, err
	}

	out := site.New(cfg.OutputDir)
	if err := out.Reset(); err != nil {
		return result, err
	}

	copied, err := out.CopyAssets(cfg.StaticDir)
	if err != nil {
		return result, err
	}
	result.AssetsCopied = copied
	if copied {
		fmt.Fprintf(w, "copied:  static assets from %s\n", cfg.StaticDir)
	}

	renderer, err := render.New(cfg.TemplatePath)
	if err != nil {
		return result, err
	}

	paths, err := records.List(cfg.DataDir)
	if err != nil {
		return result, err
	}
	if len(paths) == 0 {
		fmt.Fprintf(warn, "warning: no contact records found in %s\n", cfg.DataDir)
		return result, nil
	}

	for _, p := range paths {
		rec, err := records.Read(p)
		if err != nil {
			return result, err
		}
		slug, err := writeContact(out, renderer, rec, cfg.Defaults)
		if err != nil {
			return result, err
		}
		fmt.Fprintf(w, "built:   %s\n", slug)
		result.Written = append(result.Written, slug)
	}

	if err := out.WriteMarker(); err != nil {
		return result, err
	}

	fmt.Fprintf(w, "\nBuild summary: %d contact(s) written to %s\n", result.Count(), cfg.OutputDir)
	return result, nil
}

func writeContact(out *site.Writer, r *render.Renderer, rec types.Record, d types.Defaults) (string, error) {
	c := normalize.Contact(rec, d)

	page, err := r.Render(c)
	if err != nil {
		return "", err
	}
	card := vcard.Serialize(c)

	if _, err := out.WriteContact(c.Slug, page, normalize.VCardFilename(c), card); err != nil {
		return "", fmt.Errorf("writing %s: %w", c.Slug, err)
	}
	return c.Slug, nil
}
