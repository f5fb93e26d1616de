// Package highlight turns fenced code blocks into syntax-highlighted HTML.
// It uses the Chroma library to do this work.
//
// A raw language tag is resolved to a Chroma lexer by a [Resolver]:
// the tag is lowercased, checked for the "diff-" prefix
// marking a unified diff of an embedded language,
// passed through a small alias table
// for languages without a lexer of their own,
// and finally looked up in a [LexerProvider].
// Blocks whose language cannot be resolved
// degrade to escaped plain text.
package highlight
