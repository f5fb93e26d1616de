package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"go.abhg.dev/md2html/internal/errdefer"
	"go.abhg.dev/md2html/internal/html"
)

// Renderer renders converted documents into HTML pages.
type Renderer interface {
	RenderPage(io.Writer, *html.PageInfo) error
	WriteStatic(string) error
}

var _ Renderer = (*html.Renderer)(nil)

// Generator renders user-specified Markdown files into HTML pages.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log      *log.Logger
	Debug    *log.Logger // nil unless -debug was set
	Markdown goldmark.Markdown
	Renderer Renderer
	OutDir   string
	Embedded bool
}

// Generate runs the generator over the provided files.
func (g *Generator) Generate(files ...string) error {
	if err := g.Renderer.WriteStatic(g.OutDir); err != nil {
		return err
	}

	for _, file := range files {
		if err := g.generateFile(file); err != nil {
			return errtrace.Wrap(fmt.Errorf("%v: %w", file, err))
		}
	}
	return nil
}

func (g *Generator) generateFile(name string) (err error) {
	g.Log.Printf("Rendering %v", name)

	src, err := os.ReadFile(name)
	if err != nil {
		return errtrace.Wrap(err)
	}

	ctx := parser.NewContext()
	var body bytes.Buffer
	if err := g.Markdown.Convert(src, &body, parser.WithContext(ctx)); err != nil {
		return errtrace.Wrap(err)
	}

	title := pageTitle(meta.Get(ctx), name)
	outPath := filepath.Join(g.OutDir, outputName(name))
	if g.Debug != nil {
		g.Debug.Printf("%v: title=%q out=%v", name, title, outPath)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	info := html.PageInfo{
		Title: title,
		Body:  template.HTML(body.String()),
	}
	if !g.Embedded {
		info.Stylesheet = html.StylesheetPath
	}

	return errtrace.Wrap(g.Renderer.RenderPage(f, &info))
}

// outputName is the name of the generated file:
// the base name with its Markdown extension swapped for '.html'.
func outputName(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case ".md", ".markdown", ".mdown":
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".html"
}

// pageTitle picks the page title from the document's frontmatter,
// falling back to the file's base name.
func pageTitle(metadata map[string]any, name string) string {
	if title, ok := metadata["title"].(string); ok && title != "" {
		return title
	}
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
