// Package types provides shared type definitions for the pkgdocs MCP server.
//
// This package defines the value types that flow through the documentation
// pipeline: sections, search results, search options, and package
// descriptions.
//
// # Core Types
//
// Section represents a heading-delimited slice of a Markdown document:
//
//	section := types.Section{
//	    Title:   "Installation",
//	    Content: "Run `npm install left-pad` to install.",
//	    Level:   2,
//	}
//
// SearchResult pairs matched content with a relevance score and a label
// identifying which block produced the match:
//
//	result := types.SearchResult{
//	    Content: "...run npm install to get started...",
//	    Score:   3,
//	    Source:  "Installation",
//	}
//
// Scores are comparable only within one search invocation and one scoring
// mode. Exact-mode scores count occurrences; fuzzy-mode scores come from the
// fuzzy ranker. The two scales are never mixed in a single result list.
//
// # Ownership
//
// All types here are plain values constructed and consumed within a single
// pipeline invocation. Nothing is mutated after creation and nothing is
// retained across calls.
package types
