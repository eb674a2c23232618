package htmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_BasicStructure(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert("<h1>Title</h1><p>A paragraph with <strong>bold</strong> text.</p>")
	require.NoError(t, err)
	assert.Contains(t, md, "# Title")
	assert.Contains(t, md, "**bold**")
}

func TestConverter_CodeBlock(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert("<pre><code>npm install</code></pre>")
	require.NoError(t, err)
	assert.Contains(t, md, "npm install")
}

func TestConverter_EmptyInput(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert("   ")
	require.NoError(t, err)
	assert.Equal(t, "", md)
}

func TestConverter_OutputFeedsSectionExtraction(t *testing.T) {
	c := NewConverter()

	md, err := c.Convert("<h2>Usage</h2><p>Call the thing.</p>")
	require.NoError(t, err)
	assert.Contains(t, md, "## Usage")
	assert.Contains(t, md, "Call the thing.")
}
