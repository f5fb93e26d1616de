// Package markdown installs fenced code block highlighting
// into a goldmark Markdown pipeline.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"go.abhg.dev/md2html/internal/highlight"
)

// Config configures the highlighting extension.
type Config struct {
	// Plugins lists plugin identifiers for caller bookkeeping.
	// The extension records them but does not consume them.
	Plugins []string

	// Init runs once per [Extender.Extend] call,
	// before any highlighting occurs,
	// with the highlighter the extension will use.
	// Callers can swap styles or install a custom lexer provider here.
	Init func(*highlight.Highlighter)
}

// Option customizes an [Extender].
type Option func(*Extender)

// WithHighlighter sets the highlighter the extension renders with.
func WithHighlighter(h *highlight.Highlighter) Option {
	return func(e *Extender) {
		e.highlighter = h
	}
}

// WithConfig sets the extension configuration.
func WithConfig(cfg Config) Option {
	return func(e *Extender) {
		e.config = cfg
	}
}

// Extender is a [goldmark.Extender] that replaces
// the default rendering of fenced code blocks
// with syntax-highlighted output.
type Extender struct {
	highlighter *highlight.Highlighter
	config      Config
}

var _ goldmark.Extender = (*Extender)(nil)

// NewExtender builds an Extender with the given options.
// Without options it highlights with a zero [highlight.Highlighter].
func NewExtender(opts ...Option) *Extender {
	e := &Extender{
		highlighter: &highlight.Highlighter{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extend installs the code block renderer on m.
// Extending twice re-registers the renderer and re-runs Config.Init.
func (e *Extender) Extend(m goldmark.Markdown) {
	if init := e.config.Init; init != nil {
		init(e.highlighter)
	}
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&codeBlockRenderer{highlighter: e.highlighter}, 100),
	))
}
