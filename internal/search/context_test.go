package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContext_MatchInMiddle(t *testing.T) {
	content := "This is a long text with a test match in the middle of the content."

	got := ExtractContext(content, "test", 10)
	// Window spans 10 bytes either side of the match, cut mid-word.
	assert.Equal(t, "...xt with a test match in ...", got)
}

func TestExtractContext_MatchAtStart(t *testing.T) {
	content := "Test is at the beginning of this text."

	got := ExtractContext(content, "Test", 10)
	assert.Equal(t, "Test is at the...", got)
	assert.False(t, strings.HasPrefix(got, "..."))
}

func TestExtractContext_MatchAtEnd(t *testing.T) {
	got := ExtractContext("find the needle", "needle", 4)
	assert.Equal(t, "...the needle", got)
}

func TestExtractContext_NoMatchLongContent(t *testing.T) {
	content := "This content does not contain the query and is longer than twenty bytes."

	got := ExtractContext(content, "nonexistent", 10)
	assert.Equal(t, content[:10]+"...", got)
}

func TestExtractContext_NoMatchShortContent(t *testing.T) {
	content := "short text"

	got := ExtractContext(content, "nonexistent", 10)
	assert.Equal(t, content, got)
}

func TestExtractContext_CaseInsensitive(t *testing.T) {
	got := ExtractContext("Install with NPM today", "npm", 5)
	assert.Equal(t, "...with NPM toda...", got)
}

func TestExtractContext_WindowCoversWholeContent(t *testing.T) {
	content := "tiny test doc"

	got := ExtractContext(content, "test", 100)
	assert.Equal(t, content, got)
}

func TestExtractContext_DefaultContextSize(t *testing.T) {
	content := strings.Repeat("x", 300) + "needle" + strings.Repeat("y", 300)

	got := ExtractContext(content, "needle", 0)
	assert.Equal(t, "..."+strings.Repeat("x", 100)+"needle"+strings.Repeat("y", 100)+"...", got)
}

func TestExtractContext_Deterministic(t *testing.T) {
	content := "the same inputs always give the same window"
	first := ExtractContext(content, "inputs", 8)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractContext(content, "inputs", 8))
	}
}

func TestExtractContext_EmptyQuery(t *testing.T) {
	content := strings.Repeat("z", 50)
	got := ExtractContext(content, "", 10)
	assert.Equal(t, content[:10]+"...", got)
}
