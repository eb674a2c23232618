package search

import (
	"strings"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// ExtractContext returns a bounded window of content around the first
// case-insensitive occurrence of query. contextSize is the window radius in
// bytes; zero or negative means types.DefaultContextSize.
//
// When the query does not occur, content is returned verbatim if it fits in
// twice the context size, otherwise the first contextSize bytes plus an
// ellipsis. When it does occur, the window spans contextSize bytes on either
// side of the match, with ellipsis markers on whichever ends truncate the
// source. Boundary cuts land mid-word (and, for multi-byte text, mid-rune);
// that is accepted rather than adjusted.
//
// The function is pure and deterministic for identical inputs.
func ExtractContext(content, query string, contextSize int) string {
	if contextSize <= 0 {
		contextSize = types.DefaultContextSize
	}

	pos := -1
	if query != "" {
		pos = strings.Index(strings.ToLower(content), strings.ToLower(query))
	}

	if pos < 0 {
		if len(content) <= 2*contextSize {
			return content
		}
		return content[:contextSize] + types.Ellipsis
	}

	start := pos - contextSize
	if start < 0 {
		start = 0
	}
	end := pos + len(query) + contextSize
	if end > len(content) {
		end = len(content)
	}

	window := content[start:end]
	if start > 0 {
		window = types.Ellipsis + window
	}
	if end < len(content) {
		window += types.Ellipsis
	}
	return window
}
