package htmldoc

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// Converter transforms HTML documentation into Markdown the pipeline can
// segment and search. It wraps html-to-markdown with the commonmark and
// table plugins.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a ready-to-use Converter. The underlying converter is
// safe for concurrent use.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML into Markdown. Blank input yields blank output
// without error.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	return c.conv.ConvertString(html)
}
