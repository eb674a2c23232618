package types

const (
	// Ellipsis marks truncation in context windows and summaries.
	Ellipsis = "..."

	// DefaultMaxResults is used when SearchOptions.MaxResults is zero or negative.
	DefaultMaxResults = 10

	// DefaultContextSize is the context window radius, in bytes, used when a
	// caller passes a zero or negative context size.
	DefaultContextSize = 100
)

// SearchOptions controls a single search invocation.
type SearchOptions struct {
	Query      string
	Fuzzy      bool // Fuzzy selects approximate matching instead of substring counting
	MaxResults int  // MaxResults caps the result list; <=0 means DefaultMaxResults
}

// Limit returns the effective result cap.
func (o SearchOptions) Limit() int {
	if o.MaxResults <= 0 {
		return DefaultMaxResults
	}
	return o.MaxResults
}

// SearchResult represents a single match from one search invocation.
type SearchResult struct {
	// Content is a bounded context window around the match, with ellipsis
	// markers where the window truncates the source block.
	Content string

	// Score is comparable only within one invocation. In exact mode it is
	// the case-insensitive occurrence count; in fuzzy mode it is the
	// ranker's score. Higher is better in both modes; the scales are not
	// comparable to each other.
	Score float64

	// Source labels the block that produced the match, e.g. a section title
	// or an ordinal label like "Code Block 2".
	Source string
}
