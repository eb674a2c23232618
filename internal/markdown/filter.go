package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

// Heading-text heuristics for keeping or dropping sections. Irrelevance wins
// when both match the same title.
var (
	irrelevantTitle = regexp.MustCompile(`(?i)\b(license|licence|contribut(?:ing|ors?)|changelog|change log|sponsors?|sponsorship|funding|security policy|code of conduct|authors?|acknowledge?ments?|credits)\b`)

	relevantTitle = regexp.MustCompile(`(?i)\b(usage|examples?|api|documentation|docs|getting[ -]started|install(?:ation)?|quick[ -]?start|guide|tutorial|how[ -]?to|features|overview|introduction|functions?|methods?|class(?:es)?|interfaces?|modules?|packages?)\b`)

	apiTitle = regexp.MustCompile(`(?i)\b(api|reference|functions?|methods?|class(?:es)?|interfaces?|types?)\b`)

	exampleTitle = regexp.MustCompile(`(?i)\b(examples?|usage|quick[ -]?start|getting[ -]started|tutorial)\b`)
)

// FilterRelevantSections returns the subset of sections worth surfacing to a
// consumer, preserving order. A section survives when its title avoids the
// irrelevance patterns, its content is non-empty after trimming, and either
// it sits at level 1 or 2 or its title matches a relevance pattern.
// Filtering an already-filtered list changes nothing.
func FilterRelevantSections(sections []types.Section) []types.Section {
	var out []types.Section
	for _, s := range sections {
		if irrelevantTitle.MatchString(s.Title) {
			continue
		}
		if s.IsEmpty() {
			continue
		}
		if s.Level <= 2 || relevantTitle.MatchString(s.Title) {
			out = append(out, s)
		}
	}
	return out
}

// ExtractAPISection concatenates all API-related sections under synthesized
// "##" headings, each separated by a blank line. No match yields "".
func ExtractAPISection(sections []types.Section) string {
	return collectMatching(sections, apiTitle)
}

// ExtractExamplesSection concatenates all example/usage sections under
// synthesized "##" headings, each separated by a blank line. No match
// yields "".
func ExtractExamplesSection(sections []types.Section) string {
	return collectMatching(sections, exampleTitle)
}

func collectMatching(sections []types.Section, pattern *regexp.Regexp) string {
	var parts []string
	for _, s := range sections {
		if s.IsEmpty() || !pattern.MatchString(s.Title) {
			continue
		}
		parts = append(parts, fmt.Sprintf("## %s\n\n%s", s.Title, strings.TrimSpace(s.Content)))
	}
	return strings.Join(parts, "\n\n")
}
