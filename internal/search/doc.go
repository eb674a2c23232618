// Package search scores labeled text blocks against a free-text query and
// returns ranked matches with a bounded context window around each hit.
//
// Two scoring modes exist behind SearchOptions.Fuzzy:
//
//   - Exact: case-insensitive substring search; score = number of
//     non-overlapping occurrences of the query in the block
//   - Fuzzy: delegated to the sahilm/fuzzy ranker; a block is included only
//     when the ranker reports a positive score
//
// The two scales are monotonic (higher is better) and internally consistent
// within one call, but not comparable to each other. One call produces one
// mode's results only; callers must never mix scores across modes.
//
// # Ordering
//
// Results are sorted descending by score. Ties preserve the insertion order
// of the input block list, which is deterministic for all callers in this
// module (document order for sections and code blocks, extraction order for
// signatures).
//
// # Usage
//
//	results := search.Sections(sections, types.SearchOptions{Query: "install"})
//	for _, r := range results {
//	    fmt.Printf("[%s] %.0f: %s\n", r.Source, r.Score, r.Content)
//	}
package search
