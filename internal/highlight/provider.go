package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// LexerProvider supplies lexers by language name.
type LexerProvider interface {
	// Lexer returns the lexer for the given language,
	// or nil if the language is unknown.
	// Unknown languages are not errors.
	Lexer(name string) chroma.Lexer
}

// Registry is a [LexerProvider] backed by Chroma's
// process-wide lexer registry.
// Lexer definitions are compiled on first use
// and cached by Chroma for the remainder of the process.
type Registry struct{}

var _ LexerProvider = (*Registry)(nil)

// Lexer returns the registered lexer matching name by name or alias.
// An empty name returns nil without consulting the registry.
func (*Registry) Lexer(name string) chroma.Lexer {
	if len(name) == 0 {
		return nil
	}
	return lexers.Get(name)
}

// Bundle is a [LexerProvider] that serves from a fixed set of lexers,
// never falling back to the global registry.
// Use it to isolate tests or to run independent highlighter instances
// with different language sets.
type Bundle struct {
	lexers map[string]chroma.Lexer
}

var _ LexerProvider = (*Bundle)(nil)

// NewBundle builds a Bundle holding the named languages,
// resolving each against the global registry eagerly.
// Names the registry does not recognize are skipped.
func NewBundle(names ...string) *Bundle {
	var b Bundle
	for _, name := range names {
		if l := lexers.Get(name); l != nil {
			b.Add(name, l)
		}
	}
	return &b
}

// Add registers a lexer under the given name,
// replacing any previous entry for that name.
func (b *Bundle) Add(name string, l chroma.Lexer) {
	if b.lexers == nil {
		b.lexers = make(map[string]chroma.Lexer)
	}
	b.lexers[name] = l
}

// Lexer returns the bundled lexer for name, or nil if absent.
func (b *Bundle) Lexer(name string) chroma.Lexer {
	return b.lexers[name]
}
