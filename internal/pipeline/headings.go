package pipeline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a document heading used for anchor generation and title recovery.
// Text is the display text with inline emphasis markers stripped.
type Heading struct {
	Level int
	Text  string
}

// ExtractHeadings collects ATX headings from Markdown content in document
// order. When the document contains no ATX headings at all, paragraphs made
// of a single bold span are promoted to level-1 pseudo-headings: converters
// that lose heading styles commonly emit section titles that way.
func ExtractHeadings(content string) []Heading {
	src := []byte(content)
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		txt := strings.TrimSpace(string(h.Text(src)))
		if txt == "" {
			continue
		}
		headings = append(headings, Heading{Level: h.Level, Text: txt})
	}
	if len(headings) > 0 {
		return headings
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		p, ok := n.(*ast.Paragraph)
		if !ok {
			continue
		}
		if txt, ok := boldOnlyText(p, src); ok {
			headings = append(headings, Heading{Level: 1, Text: txt})
		}
	}
	return headings
}

// boldOnlyText returns the text of a paragraph whose entire content is one
// bold emphasis span.
func boldOnlyText(p *ast.Paragraph, src []byte) (string, bool) {
	child := p.FirstChild()
	if child == nil || child.NextSibling() != nil {
		return "", false
	}
	em, ok := child.(*ast.Emphasis)
	if !ok || em.Level != 2 {
		return "", false
	}
	txt := strings.TrimSpace(string(em.Text(src)))
	if txt == "" {
		return "", false
	}
	return txt, true
}
