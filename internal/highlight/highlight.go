package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultClassPrefix is prepended to resolved language names
// to form the class attribute of highlighted blocks.
const DefaultClassPrefix = "language-"

// Highlighter renders fenced code blocks into HTML.
//
// Output is always wrapped in <pre><code> tags
// carrying a "<prefix><language>" class on both,
// or no class at all if the language could not be resolved to a name.
// Token spans inside the wrapper use Chroma's standard classes;
// [Highlighter.WriteCSS] emits a matching stylesheet.
type Highlighter struct {
	// Resolver maps raw language tags to lexers.
	Resolver Resolver

	// ClassPrefix overrides [DefaultClassPrefix].
	ClassPrefix string

	// Style used for the stylesheet written by WriteCSS.
	Style *chroma.Style

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (h *Highlighter) init() {
	h.once.Do(func() {
		h.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(true),
		)
		if h.Style == nil {
			h.Style = styles.Fallback
		}
		if h.ClassPrefix == "" {
			h.ClassPrefix = DefaultClassPrefix
		}
	})
}

// WriteCSS writes the token style classes
// used by highlighted output to writer.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	h.init()
	return errtrace.Wrap(h.formatter.WriteCSS(w, h.Style))
}

// Highlight renders one fenced code block to writer.
//
// Unknown and missing languages are not errors:
// they degrade to escaped, unhighlighted text.
// Faults inside Chroma's tokenizer propagate unmodified.
func (h *Highlighter) Highlight(w io.Writer, src []byte, tag string) error {
	h.init()

	res := h.Resolver.Resolve(tag)

	var class string
	if res.Language != "" {
		class = ` class="` +
			template.HTMLEscapeString(h.ClassPrefix+res.Language) + `"`
	}

	if _, err := fmt.Fprintf(w, "<pre%s><code%s>", class, class); err != nil {
		return errtrace.Wrap(err)
	}
	if err := h.payload(w, src, res); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</code></pre>")
	return errtrace.Wrap(err)
}

func (h *Highlighter) payload(w io.Writer, src []byte, res Resolution) error {
	switch {
	case res.Lexer == nil:
		template.HTMLEscape(w, src)
		return nil
	case res.Diff:
		tokens, err := diffTokens(src, res.Lexer)
		if err != nil {
			return err
		}
		return errtrace.Wrap(h.formatter.Format(w, h.Style, chroma.Literator(tokens...)))
	default:
		it, err := chroma.Coalesce(res.Lexer).Tokenise(nil, string(src))
		if err != nil {
			return errtrace.Wrap(err)
		}
		return errtrace.Wrap(h.formatter.Format(w, h.Style, it))
	}
}

// HighlightString is a convenience form of [Highlighter.Highlight]
// returning the rendered block as a string.
func (h *Highlighter) HighlightString(src, tag string) (string, error) {
	var buf bytes.Buffer
	if err := h.Highlight(&buf, []byte(src), tag); err != nil {
		return "", err
	}
	return buf.String(), nil
}
