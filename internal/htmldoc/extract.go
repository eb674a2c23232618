// Package htmldoc handles documentation that arrives as HTML: converting it
// to Markdown for the pipeline, and extracting code regions directly from the
// HTML tree when conversion is not wanted.
package htmldoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractCodeBlocks returns the text of every pre element and every inline
// code element, in document order. A code element nested inside a pre is not
// counted separately from its parent, so the common pre > code pairing yields
// one block, not two. Empty elements are omitted.
func ExtractCodeBlocks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var blocks []string
	doc.Find("pre, code").Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("code") && sel.ParentsFiltered("pre").Length() > 0 {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		blocks = append(blocks, text)
	})

	return blocks, nil
}
