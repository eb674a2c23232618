package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// Block is a labeled unit of searchable text. Blocks are searched in slice
// order, which doubles as the tie-break order for equal scores.
type Block struct {
	Label string
	Text  string
}

// Search scores every block against opts.Query, drops non-matches, sorts the
// rest descending by score (stable, so ties keep block order), truncates to
// opts.Limit(), and attaches a context window around the first hit in each
// matched block.
//
// An empty query returns nil immediately. This is an explicit contract:
// substring search against "" would otherwise match every block.
func Search(blocks []Block, opts types.SearchOptions) []types.SearchResult {
	if opts.Query == "" {
		return nil
	}

	var results []types.SearchResult
	if opts.Fuzzy {
		results = fuzzyScore(blocks, opts.Query)
	} else {
		results = exactScore(blocks, opts.Query)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit := opts.Limit(); len(results) > limit {
		results = results[:limit]
	}
	return results
}

// exactScore counts non-overlapping case-insensitive occurrences of the query
// in each block. Blocks with zero occurrences are excluded, not kept at score
// zero.
func exactScore(blocks []Block, query string) []types.SearchResult {
	lowerQuery := strings.ToLower(query)

	var results []types.SearchResult
	for _, b := range blocks {
		count := strings.Count(strings.ToLower(b.Text), lowerQuery)
		if count == 0 {
			continue
		}
		results = append(results, types.SearchResult{
			Content: ExtractContext(b.Text, query, 0),
			Score:   float64(count),
			Source:  b.Label,
		})
	}
	return results
}

// fuzzyScore delegates to the sahilm/fuzzy ranker. Only positive-quality
// matches are included; the ranker's score is used as-is.
func fuzzyScore(blocks []Block, query string) []types.SearchResult {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}

	var results []types.SearchResult
	for _, m := range fuzzy.Find(query, texts) {
		if m.Score <= 0 {
			continue
		}
		b := blocks[m.Index]
		results = append(results, types.SearchResult{
			Content: ExtractContext(b.Text, query, 0),
			Score:   float64(m.Score),
			Source:  b.Label,
		})
	}
	return results
}

// Document searches the whole document as a single block labeled
// "Documentation".
func Document(content string, opts types.SearchOptions) []types.SearchResult {
	return Search([]Block{{Label: "Documentation", Text: content}}, opts)
}

// Sections searches sections by title and content together, so a query that
// matches only a section's title still surfaces the section.
func Sections(sections []types.Section, opts types.SearchOptions) []types.SearchResult {
	blocks := make([]Block, len(sections))
	for i, s := range sections {
		blocks[i] = Block{Label: s.Title, Text: s.SearchText()}
	}
	return Search(blocks, opts)
}

// CodeBlocks searches extracted code blocks, labeled by document order.
func CodeBlocks(codeBlocks []string, opts types.SearchOptions) []types.SearchResult {
	blocks := make([]Block, len(codeBlocks))
	for i, cb := range codeBlocks {
		blocks[i] = Block{Label: fmt.Sprintf("Code Block %d", i+1), Text: cb}
	}
	return Search(blocks, opts)
}

// Signatures searches extracted function signatures, labeled by extraction
// order.
func Signatures(signatures []string, opts types.SearchOptions) []types.SearchResult {
	blocks := make([]Block, len(signatures))
	for i, sig := range signatures {
		blocks[i] = Block{Label: fmt.Sprintf("Function %d", i+1), Text: sig}
	}
	return Search(blocks, opts)
}
