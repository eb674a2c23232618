package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsmith/pkgdocs-mcp/pkg/types"
)

func sec(title string, level int, content string) types.Section {
	return types.Section{Title: title, Level: level, Content: content}
}

func TestFilterRelevantSections(t *testing.T) {
	tests := []struct {
		name     string
		sections []types.Section
		want     []string
	}{
		{
			name: "top level sections kept",
			sections: []types.Section{
				sec("Anything Goes", 1, "body"),
				sec("Random Notes", 2, "body"),
			},
			want: []string{"Anything Goes", "Random Notes"},
		},
		{
			name: "deep sections need a relevance pattern",
			sections: []types.Section{
				sec("Usage", 3, "how to use"),
				sec("Internal Musings", 3, "body"),
			},
			want: []string{"Usage"},
		},
		{
			name: "irrelevant titles dropped at any level",
			sections: []types.Section{
				sec("License", 1, "MIT"),
				sec("Contributors", 2, "a list"),
				sec("Changelog", 1, "1.0.0"),
				sec("Code of Conduct", 2, "be nice"),
				sec("Overview", 2, "what it does"),
			},
			want: []string{"Overview"},
		},
		{
			name: "irrelevance wins over relevance",
			sections: []types.Section{
				sec("License and Usage", 1, "dual purpose"),
			},
			want: nil,
		},
		{
			name: "empty content dropped even when relevant",
			sections: []types.Section{
				sec("API", 2, "   \n\t"),
				sec("Examples", 2, "real content"),
			},
			want: []string{"Examples"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRelevantSections(tt.sections)
			var titles []string
			for _, s := range got {
				titles = append(titles, s.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterRelevantSections_Idempotent(t *testing.T) {
	sections := []types.Section{
		sec("Overview", 1, "intro"),
		sec("License", 1, "MIT"),
		sec("Getting Started", 3, "steps"),
		sec("Appendix B", 4, "obscure"),
	}

	once := FilterRelevantSections(sections)
	twice := FilterRelevantSections(once)
	assert.Equal(t, once, twice)
}

func TestFilterRelevantSections_OrderPreserved(t *testing.T) {
	sections := []types.Section{
		sec("Usage", 3, "c"),
		sec("Overview", 1, "a"),
		sec("Installation", 3, "b"),
	}

	got := FilterRelevantSections(sections)
	require.Len(t, got, 3)
	assert.Equal(t, "Usage", got[0].Title)
	assert.Equal(t, "Overview", got[1].Title)
	assert.Equal(t, "Installation", got[2].Title)
}

func TestExtractAPISection(t *testing.T) {
	sections := []types.Section{
		sec("Overview", 1, "intro"),
		sec("API Reference", 2, "func Foo() error"),
		sec("Methods", 3, "obj.bar()"),
	}

	got := ExtractAPISection(sections)
	assert.Equal(t, "## API Reference\n\nfunc Foo() error\n\n## Methods\n\nobj.bar()", got)
}

func TestExtractAPISection_NoMatch(t *testing.T) {
	assert.Equal(t, "", ExtractAPISection([]types.Section{sec("Overview", 1, "intro")}))
	assert.Equal(t, "", ExtractAPISection(nil))
}

func TestExtractExamplesSection(t *testing.T) {
	sections := []types.Section{
		sec("Quick Start", 2, "step one"),
		sec("License", 1, "MIT"),
		sec("Examples", 2, "example code"),
	}

	got := ExtractExamplesSection(sections)
	assert.Equal(t, "## Quick Start\n\nstep one\n\n## Examples\n\nexample code", got)
}
