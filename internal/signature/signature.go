// Package signature extracts function, method, and type declarations from
// documentation code blocks using an ordered table of per-ecosystem patterns.
//
// Every pattern is tried against every block regardless of the block's fence
// language. Consumers mislabel snippets and documentation pages routinely mix
// languages, so the language is re-derived from pattern shape, not trusted
// from the fence tag. Duplicate matches from overlapping pattern families are
// retained; downstream search treats each surfaced signature independently.
package signature

import (
	"regexp"
	"strings"
)

// pattern pairs an ecosystem label with a line-anchored declaration regex.
// Each regex anchors at start of line and stops before the opening body brace
// or trailing colon. Parameter lists spanning multiple lines are captured
// because the parameter classes admit newlines.
type pattern struct {
	ecosystem string
	re        *regexp.Regexp
}

// patterns is the fixed extraction order: block order first, then this order
// within a block. Adding an ecosystem means appending a row, not touching
// existing ones.
var patterns = []pattern{
	{"javascript", regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:default\s+)?(?:async\s+)?function\s*\*?\s*\w+\s*\([^)]*\)(?:\s*:\s*[^{\n]+)?`)},
	{"javascript", regexp.MustCompile(`(?m)^[ \t]*(?:export\s+)?(?:const|let|var)\s+\w+\s*(?::\s*[^=\n]+)?=\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*(?::\s*[^=\n]+)?\s*=>`)},
	{"python", regexp.MustCompile(`(?m)^[ \t]*(?:async\s+)?def\s+\w+\s*\([^)]*\)(?:\s*->\s*[^:\n]+)?`)},
	{"python", regexp.MustCompile(`(?m)^[ \t]*class\s+\w+(?:\([^)]*\))?`)},
	{"go", regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s*)?\w+\s*\([^)]*\)[^{\n]*`)},
	{"rust", regexp.MustCompile(`(?m)^[ \t]*(?:pub(?:\([^)]*\))?\s+)?(?:async\s+)?(?:unsafe\s+)?fn\s+\w+\s*(?:<[^>]*>)?\s*\([^)]*\)(?:\s*->\s*[^{\n]+)?`)},
	// Modifier-prefixed only; a bare swift func is indistinguishable from a
	// Go function and the go row already captures that shape.
	{"swift", regexp.MustCompile(`(?m)^[ \t]*(?:public|open|internal|private|fileprivate)\s+(?:static\s+)?func\s+\w+\s*(?:<[^>]*>)?\s*\([^)]*\)(?:\s*(?:async\s+)?(?:throws\s+)?->\s*[^{\n]+)?`)},
	{"method", regexp.MustCompile(`(?m)^[ \t]*(?:public|private|protected)\s+(?:static\s+|final\s+|abstract\s+|override\s+)*[\w<>\[\],. ]+?\s+\w+\s*\([^)]*\)`)},
}

// Extract applies the pattern table to every code block and returns all
// matched declaration spans, trimmed of surrounding whitespace. A block with
// no matches contributes nothing.
func Extract(blocks []string) []string {
	var signatures []string
	for _, block := range blocks {
		for _, p := range patterns {
			for _, m := range p.re.FindAllString(block, -1) {
				m = strings.TrimSpace(m)
				if m != "" {
					signatures = append(signatures, m)
				}
			}
		}
	}
	return signatures
}
