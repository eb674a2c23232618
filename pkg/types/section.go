package types

import "strings"

// Section represents a heading-delimited portion of a Markdown document.
// Content holds everything between this heading and the next heading of any
// level, in document order.
type Section struct {
	Title   string
	Content string
	Level   int // Heading depth, 1..6
}

// IsEmpty reports whether the section carries no content after trimming
// whitespace. A heading immediately followed by another heading produces an
// empty section; the extractor preserves it and the relevance filter drops it.
func (s Section) IsEmpty() bool {
	return strings.TrimSpace(s.Content) == ""
}

// SearchText returns the text scored during section search: the title and
// content joined by a newline, so a query matching only the title still
// surfaces the section.
func (s Section) SearchText() string {
	return s.Title + "\n" + s.Content
}
