// Package export writes the site as plain files for static hosting.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"

	"landing/internal/content"
	"landing/internal/views"
	"landing/internal/web"
)

type Options struct {
	// BaseURL is used for the canonical link; empty omits it.
	BaseURL   string
	Navigator views.Navigator
}

// Write renders index.html, 404.html and contact/thanks/index.html into dir
// and copies the static assets under dir/static. It returns the files
// written, relative to dir.
func Write(ctx context.Context, dir string, site content.Site, opts Options) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	canonical := ""
	if opts.BaseURL != "" {
		canonical = opts.BaseURL + "/"
	}
	pages := []struct {
		name string
		c    templ.Component
	}{
		{"index.html", views.HomePage(site, canonical)},
		{"404.html", views.NotFound(opts.Navigator)},
		{filepath.Join("contact", "thanks", "index.html"), views.ThanksPage(site)},
	}

	var written []string
	for _, p := range pages {
		var buf bytes.Buffer
		if err := p.c.Render(ctx, &buf); err != nil {
			return written, fmt.Errorf("export: render %s: %w", p.name, err)
		}
		if err := writeFile(filepath.Join(dir, p.name), buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, p.name)
	}

	static := web.Static()
	err := fs.WalkDir(static, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(static, path)
		if err != nil {
			return err
		}
		rel := filepath.Join("static", filepath.FromSlash(path))
		if err := writeFile(filepath.Join(dir, rel), b); err != nil {
			return err
		}
		written = append(written, rel)
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("export: static assets: %w", err)
	}
	return written, nil
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
