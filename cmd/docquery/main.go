// Command docquery runs the documentation pipeline against a local Markdown
// file or stdin. It exists for poking at section extraction and search
// ranking without going through the MCP protocol.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"

	"github.com/docsmith/pkgdocs-mcp/internal/markdown"
	"github.com/docsmith/pkgdocs-mcp/internal/search"
	"github.com/docsmith/pkgdocs-mcp/internal/signature"
	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

func main() {
	file := flag.String("file", "", "Markdown file to process (default: stdin)")
	query := flag.String("query", "", "Search query; empty prints sections and summary only")
	fuzzy := flag.Bool("fuzzy", false, "Use fuzzy matching")
	limit := flag.Int("limit", 10, "Maximum results per category")
	flag.Parse()

	content, err := readInput(*file)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	sections := markdown.ExtractSections(content)
	relevant := markdown.FilterRelevantSections(sections)
	blocks := markdown.ExtractCodeBlocks(content)
	signatures := signature.Extract(blocks)

	heading := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgYellow)

	heading.Println("Summary")
	fmt.Println(markdown.Summarize(content, 0))
	fmt.Println()

	heading.Printf("Sections (%d total, %d relevant)\n", len(sections), len(relevant))
	for _, s := range relevant {
		label.Printf("  [%d] ", s.Level)
		fmt.Println(s.Title)
	}
	heading.Printf("Code blocks: %d, signatures: %d\n", len(blocks), len(signatures))

	if *query == "" {
		return
	}

	opts := types.SearchOptions{Query: *query, Fuzzy: *fuzzy, MaxResults: *limit}
	printResults(heading, label, "Section matches", search.Sections(relevant, opts))
	printResults(heading, label, "Code matches", search.CodeBlocks(blocks, opts))
	printResults(heading, label, "Signature matches", search.Signatures(signatures, opts))
}

func printResults(heading, label *color.Color, title string, results []types.SearchResult) {
	fmt.Println()
	heading.Printf("%s (%d)\n", title, len(results))
	for _, r := range results {
		label.Printf("  %.0f %s: ", r.Score, r.Source)
		fmt.Println(r.Content)
	}
}

func readInput(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(file)
	return string(data), err
}
