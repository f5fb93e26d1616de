package markdown

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"go.abhg.dev/md2html/internal/highlight"
)

// codeBlockRenderer renders fenced code blocks
// through a [highlight.Highlighter],
// replacing goldmark's default rendering.
type codeBlockRenderer struct {
	highlighter *highlight.Highlighter
}

var _ renderer.NodeRenderer = (*codeBlockRenderer)(nil)

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(
	w util.BufWriter, source []byte, node ast.Node, entering bool,
) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)
	lang := string(n.Language(source))

	var src []byte
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		src = append(src, seg.Value(source)...)
	}

	if err := r.highlighter.Highlight(w, src, lang); err != nil {
		return ast.WalkStop, err
	}
	_ = w.WriteByte('\n')
	return ast.WalkContinue, nil
}
