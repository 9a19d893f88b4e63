// Package balloon handles description-balloon text: entity placeholder
// expansion and plain-text extraction from HTML balloon markup.
package balloon

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Expand substitutes $[name]-style entity placeholders with values from
// entities. A placeholder with no matching entry is left in place verbatim,
// matching viewer behavior for unknown entities. Text without placeholders
// is returned unchanged.
func Expand(text string, entities map[string]string) string {
	var b strings.Builder
	for {
		i := strings.Index(text, "$[")
		if i < 0 {
			break
		}
		j := strings.Index(text[i+2:], "]")
		if j < 0 {
			break
		}
		b.WriteString(text[:i])
		name := text[i+2 : i+2+j]
		if val, ok := entities[name]; ok {
			b.WriteString(val)
		} else {
			b.WriteString(text[i : i+2+j+1])
		}
		text = text[i+2+j+1:]
	}
	b.WriteString(text)
	return b.String()
}

// PlainText extracts readable text from HTML balloon markup, dropping tags
// and the contents of script and style elements. Line breaks are kept for
// <br> and block-level boundaries.
func PlainText(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("balloon: parsing markup: %w", err)
	}
	var b strings.Builder
	collectText(doc, &b)
	return strings.TrimSpace(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		case "br":
			b.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr":
			b.WriteString("\n")
		}
	}
}
