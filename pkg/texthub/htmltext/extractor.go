// Package htmltext provides a unit that strips HTML markup and reports
// plain-text statistics.
package htmltext

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/cognicore/texthub/pkg/texthub"
	"github.com/cognicore/texthub/pkg/texthub/internalerr"
)

// Extractor is a texthub.Unit turning HTML into plain text.
type Extractor struct{}

// New creates an extractor.
func New() *Extractor {
	return &Extractor{}
}

// Transform strips markup from the input and reports the plain text.
//
// Result keys: "text" (string), "text_length" (int, rune count of the
// plain text), "word_count" (int, whitespace-split tokens of the plain
// text). Input that fails to parse as HTML is treated as plain text.
func (e *Extractor) Transform(input any) (texthub.Result, error) {
	raw, ok := input.(string)
	if !ok {
		return nil, fmt.Errorf("htmltext: want string input, got %T: %w", input, internalerr.ErrInvalidInput)
	}

	text := stripHTML(raw)

	return texthub.Result{
		"text":        text,
		"text_length": utf8.RuneCountInString(text),
		"word_count":  len(strings.Fields(text)),
	}, nil
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to the raw string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}
