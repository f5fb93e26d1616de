package highlight

import (
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
)

// _diffPrefix marks a language tag as a unified diff
// of the language named by the remainder of the tag.
const _diffPrefix = "diff-"

// _aliases substitutes languages without a lexer of their own
// with a close-enough relative.
// Substitution is single-level: targets are never themselves aliased.
var _aliases = map[string]string{
	"vue":  "html",
	"fish": "shell",
	"sh":   "shell",
	"cwl":  "yaml",
}

// splitDiff strips the diff prefix from an already-lowercased tag.
// It strips at most once: "diff-diff-go" is a diff of "diff-go".
func splitDiff(tag string) (base string, isDiff bool) {
	if rest, ok := strings.CutPrefix(tag, _diffPrefix); ok {
		return rest, true
	}
	return tag, false
}

// Resolution is the outcome of resolving a raw language tag.
type Resolution struct {
	// Language is the normalized, alias-resolved language name.
	// Empty if the block carried no usable tag.
	Language string

	// Lexer tokenizes Language, or nil if the language is unknown.
	Lexer chroma.Lexer

	// Diff reports that the source is a unified diff
	// whose line bodies are written in Language.
	Diff bool
}

// Resolver maps raw fence language tags to lexers.
// Its zero value resolves against the global Chroma registry
// with the built-in alias table.
type Resolver struct {
	// Lexers supplies lexers by name.
	// Defaults to [Registry].
	Lexers LexerProvider

	// Aliases extends the built-in alias table.
	// Entries here win over built-in ones.
	Aliases map[string]string
}

// Resolve maps a raw language tag to a [Resolution].
//
// The tag is lowercased, classified as diff or not,
// alias-resolved on the diff-stripped name,
// and only then used to look up a lexer.
// Resolve never fails: unknown languages yield a nil Lexer.
func (r *Resolver) Resolve(tag string) Resolution {
	lang, isDiff := splitDiff(strings.ToLower(tag))
	if target, ok := r.alias(lang); ok {
		lang = target
	}
	return Resolution{
		Language: lang,
		Lexer:    r.provider().Lexer(lang),
		Diff:     isDiff,
	}
}

func (r *Resolver) alias(lang string) (string, bool) {
	if target, ok := r.Aliases[lang]; ok {
		return target, true
	}
	target, ok := _aliases[lang]
	return target, ok
}

func (r *Resolver) provider() LexerProvider {
	if r.Lexers != nil {
		return r.Lexers
	}
	return (*Registry)(nil)
}
