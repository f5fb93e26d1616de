package highlight

import (
	"strings"

	"braces.dev/errtrace"
	chroma "github.com/alecthomas/chroma/v2"
)

// diffTokens tokenizes a unified diff,
// sub-highlighting line bodies with the embedded language's lexer.
//
// Only the leading marker of an added or removed line
// is emitted as a diff token;
// the rest of the line is lexed as base.
// Context lines are lexed as base in full.
func diffTokens(src []byte, base chroma.Lexer) ([]chroma.Token, error) {
	base = chroma.Coalesce(base)

	var tokens []chroma.Token
	for _, line := range splitLines(string(src)) {
		body := line
		switch {
		case strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "--- "):
			tokens = append(tokens, chroma.Token{Type: chroma.GenericHeading, Value: line})
			continue
		case strings.HasPrefix(line, "@@"):
			tokens = append(tokens, chroma.Token{Type: chroma.GenericSubheading, Value: line})
			continue
		case strings.HasPrefix(line, "+"):
			tokens = append(tokens, chroma.Token{Type: chroma.GenericInserted, Value: "+"})
			body = line[1:]
		case strings.HasPrefix(line, "-"):
			tokens = append(tokens, chroma.Token{Type: chroma.GenericDeleted, Value: "-"})
			body = line[1:]
		}

		if len(body) == 0 {
			continue
		}

		it, err := base.Tokenise(nil, body)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		tokens = append(tokens, it.Tokens()...)
	}
	return tokens, nil
}

// splitLines splits s after every newline, keeping the newline.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}
