// Package markdown turns unstructured Markdown documentation into structured,
// searchable blocks.
//
// The package provides four transformations, all pure and synchronous:
//
//   - ExtractSections splits a document into heading-delimited sections
//   - FilterRelevantSections keeps sections likely to matter to a consumer
//   - ExtractCodeBlocks pulls out fenced code regions
//   - Summarize derives a short plain-text synopsis
//
// # Basic Usage
//
//	sections := markdown.ExtractSections(readme)
//	relevant := markdown.FilterRelevantSections(sections)
//	blocks := markdown.ExtractCodeBlocks(readme)
//	summary := markdown.Summarize(readme, 500)
//
// Parsing is tolerant by construction: malformed input degrades to an empty
// or partial result, never an error. Every function is total over UTF-8 text.
//
// # Section Semantics
//
// A section is a heading plus all body content up to the next heading of any
// level. Content before the first heading is not addressable as a section and
// is discarded by ExtractSections (Summarize still sees it). A heading
// immediately followed by another heading yields a section with empty
// content; ExtractSections preserves it and FilterRelevantSections drops it.
package markdown
