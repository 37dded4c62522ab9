// internal/dom/dom.go

// Package dom provides the document-tree abstraction the extraction engine
// queries against. A Tree hands out element handles matched by CSS selector;
// an Element exposes named property reads. Any provider satisfying these two
// operations is interchangeable, whether it wraps a parsed HTML snapshot or a
// remote-controlled browser page.
package dom

// PropertyText is the property name that reads an element's text content.
// Any other name is resolved as an HTML attribute.
const PropertyText = "text"

// Element is a handle to a single matched node in a document tree.
type Element interface {
	// Property returns the named property value and whether it exists.
	// The name "text" reads the node's text content; anything else is
	// looked up as an attribute.
	Property(name string) (string, bool)
}

// Tree is the query capability consumed by the extraction engine.
type Tree interface {
	// QueryAll returns all elements matching the selector in document
	// order. When scope is non-nil the query is evaluated within that
	// element's subtree; a nil scope queries the whole document. An empty
	// or invalid selector yields no matches.
	QueryAll(selector string, scope Element) []Element
}
