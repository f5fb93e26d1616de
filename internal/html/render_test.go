package html

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"go.abhg.dev/md2html/internal/highlight"
)

func TestRenderer_RenderPage(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, new(Renderer).RenderPage(&buff, &PageInfo{
		Title:      "hello & goodbye",
		Body:       "<p>hi</p>",
		Stylesheet: StylesheetPath,
	}))

	doc, err := html.Parse(bytes.NewReader(buff.Bytes()))
	require.NoError(t, err, "invalid HTML:\n%v", buff.String())

	title := cascadia.MustCompile("title").MatchFirst(doc)
	require.NotNil(t, title)
	assert.Equal(t, "hello & goodbye", title.FirstChild.Data)

	link := cascadia.MustCompile(`link[rel="stylesheet"]`).MatchFirst(doc)
	require.NotNil(t, link)

	p := cascadia.MustCompile("body > p").MatchFirst(doc)
	require.NotNil(t, p, "body should be inserted unescaped")
}

func TestRenderer_RenderPage_noStylesheet(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	require.NoError(t, new(Renderer).RenderPage(&buff, &PageInfo{
		Title: "t",
		Body:  "<p>hi</p>",
	}))
	assert.NotContains(t, buff.String(), "<link")
}

func TestRenderer_RenderPage_embedded(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	r := Renderer{Embedded: true}
	require.NoError(t, r.RenderPage(&buff, &PageInfo{
		Title: "ignored",
		Body:  "<p>hi</p>",
	}))
	assert.Equal(t, "<p>hi</p>", buff.String())
}

func TestRenderer_WriteStatic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := Renderer{Highlighter: new(highlight.Highlighter)}
	require.NoError(t, r.WriteStatic(dir))

	css, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(StylesheetPath)))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".chroma")
}

func TestRenderer_WriteStatic_embedded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := Renderer{
		Embedded:    true,
		Highlighter: new(highlight.Highlighter),
	}
	require.NoError(t, r.WriteStatic(dir))

	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, ents)
}
