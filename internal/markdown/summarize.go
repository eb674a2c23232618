package markdown

import (
	"regexp"
	"strings"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// DefaultSummaryLength is used when Summarize receives a zero or negative
// maxLength.
const DefaultSummaryLength = 500

var (
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)

	// Inline formatting is stripped in a fixed order: links, then bold, then
	// italics, then inline code.
	mdLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdBoldStar   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdBoldUnder  = regexp.MustCompile(`__([^_]+)__`)
	mdItalStar   = regexp.MustCompile(`\*([^*]+)\*`)
	mdItalUnder  = regexp.MustCompile(`_([^_]+)_`)
	mdInlineCode = regexp.MustCompile("`([^`]+)`")
)

// Summarize derives a short plain-text synopsis from the first substantive
// paragraph of a Markdown document: the first paragraph that is not a
// heading, with inline formatting stripped, truncated to maxLength with a
// trailing ellipsis when longer. Empty input yields "".
func Summarize(markdown string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultSummaryLength
	}

	paragraph := firstSubstantiveParagraph(markdown)
	if paragraph == "" {
		return ""
	}

	plain := stripInline(paragraph)
	if len(plain) <= maxLength {
		return plain
	}
	cut := maxLength - len(types.Ellipsis)
	if cut < 0 {
		cut = 0
	}
	return plain[:cut] + types.Ellipsis
}

// firstSubstantiveParagraph returns the first trimmed paragraph that does not
// start with a heading marker, falling back to the first non-empty paragraph
// when every paragraph is a heading.
func firstSubstantiveParagraph(markdown string) string {
	paragraphs := paragraphSplit.Split(markdown, -1)

	var fallback string
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if fallback == "" {
			fallback = p
		}
		if !strings.HasPrefix(p, "#") {
			return p
		}
	}
	return fallback
}

func stripInline(s string) string {
	s = mdLink.ReplaceAllString(s, "$1")
	s = mdBoldStar.ReplaceAllString(s, "$1")
	s = mdBoldUnder.ReplaceAllString(s, "$1")
	s = mdItalStar.ReplaceAllString(s, "$1")
	s = mdItalUnder.ReplaceAllString(s, "$1")
	s = mdInlineCode.ReplaceAllString(s, "$1")
	return s
}
