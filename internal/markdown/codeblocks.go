package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// ExtractCodeBlocks returns the verbatim text inside every fenced or indented
// code block, in document order. The fence's language annotation is
// discarded; fence tags are frequently missing or wrong, so downstream
// signature extraction re-derives language by pattern shape instead. Empty
// blocks are omitted.
func ExtractCodeBlocks(markdown string) []string {
	source := []byte(markdown)
	doc := parse(source)

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindFencedCodeBlock, ast.KindCodeBlock:
			txt := segmentText(n, source)
			if strings.TrimSpace(txt) != "" {
				blocks = append(blocks, txt)
			}
		}
		return ast.WalkContinue, nil
	})

	return blocks
}
