// internal/extract/base.go
package extract

import "strings"

// commonBase returns the longest leading selector prefix shared by every
// configured pair, compared as whitespace-delimited token sequences: ".item"
// and ".items" share no base even though one is a substring of the other.
// A single pair has no meaningful base and yields "".
//
// The returned prefix is also a plain string prefix of every raw selector,
// so callers can strip it off to form relative selectors. Selectors with
// irregular internal whitespace shrink the base until that holds.
//
// The result is purely textual; callers decide whether it actually matches
// anything in the tree before scoping extraction to it.
func commonBase(pairs []SelectorPair) string {
	if len(pairs) < 2 {
		return ""
	}

	first := strings.Fields(pairs[0].Selector)
	shared := len(first)
	for _, pair := range pairs[1:] {
		tokens := strings.Fields(pair.Selector)
		n := 0
		for n < shared && n < len(tokens) && tokens[n] == first[n] {
			n++
		}
		shared = n
		if shared == 0 {
			return ""
		}
	}

	for ; shared > 0; shared-- {
		candidate := strings.Join(first[:shared], " ")
		if isPrefixOfAll(candidate, pairs) {
			return candidate
		}
	}
	return ""
}

func isPrefixOfAll(candidate string, pairs []SelectorPair) bool {
	for _, pair := range pairs {
		if !strings.HasPrefix(pair.Selector, candidate) {
			return false
		}
	}
	return true
}
