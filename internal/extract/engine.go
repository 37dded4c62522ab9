// internal/extract/engine.go

// Package extract implements the structured content-extraction engine: given
// a list of selector pairs it infers a common base selector, queries the
// document tree per pair, aligns the ragged per-selector results into rows,
// and filters out rows already emitted on earlier passes. One Engine instance
// serves one target resource; its dedup state spans every pass run against it.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/dverbeek/PairScraper/internal/dom"
)

// SelectorPair binds a structural selector to the element property read from
// each match. It is one column of the extracted table.
type SelectorPair struct {
	// Label names the column. Defaults to the selector string when empty.
	Label string `yaml:"label,omitempty" json:"label,omitempty"`

	// Selector is the CSS path identifying target elements. Required.
	Selector string `yaml:"content_selector" json:"content_selector"`

	// Property is the element property to read. Defaults to text content.
	Property string `yaml:"content_property,omitempty" json:"content_property,omitempty"`
}

// ColumnName returns the pair's label, falling back to its selector.
func (p SelectorPair) ColumnName() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Selector
}

// Request describes one extraction pass.
type Request struct {
	// Tree is the document-tree handle to query.
	Tree dom.Tree

	// ContentType is the target resource's declared content kind, consulted
	// by the applicability gate before any tree access.
	ContentType string

	// DOMRead indicates the caller scrapes a live, actively traversed tree
	// rather than a previously serialized one. It dispatches which Tree
	// implementation the caller supplies; the engine itself does not branch
	// on it.
	DOMRead bool
}

// Result is the outcome of one pass.
type Result struct {
	// Applicable is false when the engine declined to run: no selector
	// pairs are configured or the content kind is not tree-compatible.
	Applicable bool

	// Rows holds the newly seen rows, one value per configured pair, in
	// base-element encounter order then within-base row order.
	Rows [][]string

	// Suppressed counts rows extracted this pass but discarded because
	// their keys were already seen.
	Suppressed int
}

// Engine extracts aligned rows for a fixed set of selector pairs. The pair
// set is immutable for the engine's lifetime; the seen-row set is mutated by
// every pass. One pass runs at a time per instance, guaranteed by the caller.
type Engine struct {
	pairs []SelectorPair
	seen  *dedupSet
}

// NewEngine creates an engine for the given selector pairs.
func NewEngine(pairs []SelectorPair) *Engine {
	return &Engine{
		pairs: pairs,
		seen:  newDedupSet(),
	}
}

// Columns returns the column names, one per pair, in pair order.
func (e *Engine) Columns() []string {
	columns := make([]string, len(e.pairs))
	for i, pair := range e.pairs {
		columns[i] = pair.ColumnName()
	}
	return columns
}

// SeenRows reports how many distinct rows this instance has emitted so far.
func (e *Engine) SeenRows() int {
	return e.seen.size()
}

// Run executes one extraction pass. It never fails: an inapplicable target is
// reported through Result.Applicable, and selectors matching nothing simply
// contribute no values.
func (e *Engine) Run(ctx context.Context, req Request) (Result, error) {
	if !e.Applicable(req.ContentType) {
		return Result{Applicable: false}, nil
	}
	if req.Tree == nil {
		return Result{}, fmt.Errorf("extraction request has no document tree")
	}

	rows := e.extract(req.Tree)
	fresh := e.seen.filter(rows)
	return Result{
		Applicable: true,
		Rows:       fresh,
		Suppressed: len(rows) - len(fresh),
	}, nil
}

// Applicable reports whether this engine should run against a resource of the
// given declared content kind. It is a pure predicate over static
// configuration, independent of tree contents. An undeclared kind does not
// contradict anything and is accepted.
func (e *Engine) Applicable(contentType string) bool {
	if len(e.pairs) == 0 {
		return false
	}
	kind := strings.ToLower(strings.TrimSpace(contentType))
	return kind == "" || strings.Contains(kind, "html")
}

// extract produces this pass's full row list, before dedup filtering.
func (e *Engine) extract(tree dom.Tree) [][]string {
	base := commonBase(e.pairs)
	if base != "" {
		if baseElements := tree.QueryAll(base, nil); len(baseElements) > 0 {
			return e.extractScoped(tree, base, baseElements)
		}
	}
	return e.extractGlobal(tree)
}

// extractScoped groups extraction per base element. A base element yielding
// no non-empty value in any column contributes zero rows, so repeating blocks
// that match structurally but carry no content never emit all-empty rows.
func (e *Engine) extractScoped(tree dom.Tree, base string, baseElements []dom.Element) [][]string {
	var rows [][]string
	for _, scope := range baseElements {
		columns := make([][]string, len(e.pairs))
		empty := true
		for i, pair := range e.pairs {
			relative := strings.TrimSpace(strings.TrimPrefix(pair.Selector, base))
			columns[i] = collectValues(tree, relative, scope, pair.Property)
			if len(columns[i]) > 0 {
				empty = false
			}
		}
		if empty {
			continue
		}
		rows = append(rows, alignRows(columns)...)
	}
	return rows
}

// extractGlobal queries each pair against the whole tree.
func (e *Engine) extractGlobal(tree dom.Tree) [][]string {
	columns := make([][]string, len(e.pairs))
	for i, pair := range e.pairs {
		columns[i] = collectValues(tree, pair.Selector, nil, pair.Property)
	}
	return alignRows(columns)
}

// collectValues reads the configured property from every match, trimmed, with
// empty values dropped. Dropping empties happens before alignment and so
// shortens the column; padding then repeats the remaining last value.
func collectValues(tree dom.Tree, selector string, scope dom.Element, property string) []string {
	if property == "" {
		property = dom.PropertyText
	}

	var values []string
	for _, element := range tree.QueryAll(selector, scope) {
		value, ok := element.Property(property)
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		values = append(values, value)
	}
	return values
}
