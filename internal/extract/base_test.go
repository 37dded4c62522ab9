// internal/extract/base_test.go
package extract

import (
	"strings"
	"testing"
)

func TestCommonBase(t *testing.T) {
	tests := []struct {
		name      string
		selectors []string
		expected  string
	}{
		{
			name:      "single pair has no base",
			selectors: []string{".item .title"},
			expected:  "",
		},
		{
			name:      "shared one-token prefix",
			selectors: []string{".item .title", ".item .price"},
			expected:  ".item",
		},
		{
			name:      "shared multi-token prefix",
			selectors: []string{"div.list .row .name", "div.list .row .value"},
			expected:  "div.list .row",
		},
		{
			name:      "no shared leading token",
			selectors: []string{".title", ".price"},
			expected:  "",
		},
		{
			name:      "growth stops at first diverging token",
			selectors: []string{".list .a .x", ".list .b .x"},
			expected:  ".list",
		},
		{
			name:      "three pairs",
			selectors: []string{"ul li .name", "ul li .qty", "ul li a"},
			expected:  "ul li",
		},
		{
			name:      "one selector equals the base",
			selectors: []string{".item", ".item .title"},
			expected:  ".item",
		},
		{
			name:      "token match not bare string prefix",
			selectors: []string{".item .title", ".items .price"},
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs := make([]SelectorPair, len(tt.selectors))
			for i, sel := range tt.selectors {
				pairs[i] = SelectorPair{Selector: sel}
			}

			base := commonBase(pairs)
			if base != tt.expected {
				t.Fatalf("Expected base %q, got %q", tt.expected, base)
			}
		})
	}
}

func TestCommonBase_IsPrefixOfEveryInput(t *testing.T) {
	pairs := []SelectorPair{
		{Selector: "div.catalog ul li .name"},
		{Selector: "div.catalog ul li span.price"},
		{Selector: "div.catalog ul li a"},
	}

	base := commonBase(pairs)
	if base == "" {
		t.Fatal("Expected a non-empty base")
	}

	for _, pair := range pairs {
		if !strings.HasPrefix(pair.Selector, base) {
			t.Fatalf("Base %q is not a prefix of selector %q", base, pair.Selector)
		}
	}
}
