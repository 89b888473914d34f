// Package export renders breakpoint registries into distributable artifacts.
//
// This file implements the bundle writer: all selected artifacts are written
// into one output directory, concurrently since none depend on another.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/mediaband/pkg/mediaquery"
)

// Artifact file names within a bundle.
const (
	StylesheetFile = "mediaband.css"
	QueriesFile    = "queries.json"
	DiagramSVGFile = "diagram.svg"
	DiagramPNGFile = "diagram.png"
	IndexFile      = "index.html"
)

// WriteBundle writes the selected artifacts for reg into dir, creating it if
// needed. formats selects among "css", "json", "svg" and "png"; the demo
// index.html is always written so the bundle can be previewed directly.
func WriteBundle(ctx context.Context, dir string, reg *mediaquery.Registry, formats []string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create bundle directory: %w", err)
	}

	want := make(map[string]bool, len(formats))
	for _, f := range formats {
		want[f] = true
	}

	g, _ := errgroup.WithContext(ctx)

	if want["css"] {
		g.Go(func() error {
			return writeFile(dir, StylesheetFile, []byte(Stylesheet(reg)))
		})
	}
	if want["json"] {
		g.Go(func() error {
			data, err := QueriesJSON(reg)
			if err != nil {
				return err
			}
			return writeFile(dir, QueriesFile, data)
		})
	}
	if want["svg"] {
		g.Go(func() error {
			var b strings.Builder
			if err := WriteSVG(&b, reg); err != nil {
				return err
			}
			return writeFile(dir, DiagramSVGFile, []byte(b.String()))
		})
	}
	if want["png"] {
		g.Go(func() error {
			var b strings.Builder
			if err := WritePNG(&b, reg); err != nil {
				return err
			}
			return writeFile(dir, DiagramPNGFile, []byte(b.String()))
		})
	}
	g.Go(func() error {
		return writeFile(dir, IndexFile, []byte(DemoPage(reg)))
	})

	return g.Wait()
}

func writeFile(dir, name string, data []byte) error {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// DemoPage renders a self-contained HTML page demonstrating the hide rules:
// one block per at-band, each visible only while the viewport is inside its
// band. Resizing the browser walks through the blocks one at a time.
func DemoPage(reg *mediaquery.Registry) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>mediaband preview</title>\n<style>\n")
	b.WriteString("body{font-family:monospace;background:#282A36;color:#F8F8F2;padding:2rem;}\n")
	b.WriteString(".band{padding:1rem;margin:0.5rem 0;border:1px solid #6272A4;border-radius:4px;}\n")
	b.WriteString(Stylesheet(reg))
	b.WriteString("</style>\n</head>\n<body>\n<h1>mediaband preview</h1>\n")
	b.WriteString("<p>Resize this window; exactly one band below is visible at any width.</p>\n")

	atConds := reg.AtConditions()
	for _, name := range reg.SortedNames() {
		width, _ := reg.Width(name)
		class, err := reg.ClassName(mediaquery.At(name))
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "<div class=\"band %s\">at(%s) from %dpx <code>%s</code></div>\n",
			class, name, width, atConds[name])
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
