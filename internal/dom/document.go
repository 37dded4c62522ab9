// internal/dom/document.go
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is a Tree over a parsed HTML snapshot.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses HTML content into a queryable document tree.
func NewDocument(html string) (*Document, error) {
	return NewDocumentFromReader(strings.NewReader(html))
}

// NewDocumentFromReader parses HTML from a reader into a queryable document tree.
func NewDocumentFromReader(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{doc: doc}, nil
}

// QueryAll implements Tree.
func (d *Document) QueryAll(selector string, scope Element) []Element {
	if strings.TrimSpace(selector) == "" {
		return nil
	}

	var sel *goquery.Selection
	if scope != nil {
		node, ok := scope.(*documentElement)
		if !ok {
			return nil
		}
		sel = node.sel.Find(selector)
	} else {
		sel = d.doc.Find(selector)
	}

	elements := make([]Element, 0, sel.Length())
	sel.Each(func(i int, s *goquery.Selection) {
		elements = append(elements, &documentElement{sel: s})
	})
	return elements
}

// documentElement wraps a single-node goquery selection.
type documentElement struct {
	sel *goquery.Selection
}

// Property implements Element.
func (e *documentElement) Property(name string) (string, bool) {
	if name == "" || name == PropertyText {
		return e.sel.Text(), true
	}
	return e.sel.Attr(name)
}
