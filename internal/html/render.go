// Package html wraps converted Markdown bodies in page shells.
package html

import (
	"embed"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"

	"go.abhg.dev/md2html/internal/errdefer"
	"go.abhg.dev/md2html/internal/highlight"
)

// _staticDir is the directory under the output root
// that holds generated assets.
const _staticDir = "_"

// StylesheetPath is the page-relative path of the highlight stylesheet
// written by [Renderer.WriteStatic].
const StylesheetPath = _staticDir + "/main.css"

var (
	//go:embed tmpl/page.html
	_tmplFS embed.FS

	_pageTmpl = template.Must(
		template.New("page.html").ParseFS(_tmplFS, "tmpl/page.html"),
	)
)

// Highlighter supplies the stylesheet for highlighted code.
type Highlighter interface {
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer renders converted Markdown documents into HTML pages.
type Renderer struct {
	// Embedded mode emits only the converted body,
	// without the surrounding page shell,
	// for inclusion in an existing site.
	Embedded bool

	// Highlighter supplies the stylesheet written by WriteStatic.
	Highlighter Highlighter
}

// PageInfo is the information needed to render one page.
type PageInfo struct {
	// Title of the page.
	Title string

	// Body is the converted Markdown document.
	Body template.HTML

	// Stylesheet is the page-relative path to the highlight stylesheet.
	// Empty omits the link tag.
	Stylesheet string
}

// RenderPage renders one page to the given writer.
func (r *Renderer) RenderPage(w io.Writer, info *PageInfo) error {
	if r.Embedded {
		_, err := io.WriteString(w, string(info.Body))
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(_pageTmpl.Execute(w, info))
}

// WriteStatic writes the highlight stylesheet under dir.
//
// This is a no-op if the renderer is running in embedded mode
// or has no highlighter.
func (r *Renderer) WriteStatic(dir string) (err error) {
	if r.Embedded || r.Highlighter == nil {
		return nil
	}

	out := filepath.Join(dir, filepath.FromSlash(StylesheetPath))
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return errtrace.Wrap(err)
	}

	f, err := os.Create(out)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Close(&err, f)

	return errtrace.Wrap(r.Highlighter.WriteCSS(f))
}
