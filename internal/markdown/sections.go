package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// md is the shared goldmark instance. Parse allocates a fresh context per
// call, so concurrent use is safe.
var md = goldmark.New()

func parse(source []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(source))
}

// ExtractSections parses a Markdown document and returns its heading-delimited
// sections in document order. Each heading opens a new section; every
// non-heading block until the next heading is rendered to text and appended to
// the open section's content. A document with zero headings yields zero
// sections.
func ExtractSections(markdown string) []types.Section {
	source := []byte(markdown)
	doc := parse(source)

	var sections []types.Section
	var current *types.Section
	var parts []string

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.Join(parts, "\n")
		sections = append(sections, *current)
		current = nil
		parts = nil
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			flush()
			current = &types.Section{
				Title: inlineText(h, source),
				Level: h.Level,
			}
			continue
		}
		if current == nil {
			// Preamble before the first heading is not addressable as a
			// section.
			continue
		}
		if txt := blockText(n, source); txt != "" {
			parts = append(parts, txt)
		}
	}
	flush()

	return sections
}

// inlineText renders the inline content of a node (e.g. a heading's title)
// to plain text.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// blockText renders a block node back to text. Leaf blocks contribute their
// raw source lines; container blocks (lists, blockquotes) contribute the
// joined text of their leaf descendants.
func blockText(n ast.Node, source []byte) string {
	if n.Lines().Len() > 0 {
		return segmentText(n, source)
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if txt := blockText(c, source); txt != "" {
			parts = append(parts, txt)
		}
	}
	return strings.Join(parts, "\n")
}

// segmentText joins a leaf block's source line segments.
func segmentText(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}
