// internal/extract/dedup.go
package extract

import "strings"

// keyDelimiter joins a row's values into its canonical dedup key. The scheme
// is deliberately unescaped: a scraped value containing the delimiter can
// collide with another row, an accepted risk of keeping keys simple and
// stable. Dedup is exact-match over rendered text, not element identity.
const keyDelimiter = "|"

// rowKey derives the canonical key for a row.
func rowKey(row []string) string {
	return strings.Join(row, keyDelimiter)
}

// dedupSet tracks row keys already emitted by one engine instance. It lives
// as long as the instance, so repeated passes against the same mutating page
// only surface rows not seen before.
type dedupSet struct {
	seen map[string]struct{}
}

func newDedupSet() *dedupSet {
	return &dedupSet{seen: make(map[string]struct{})}
}

// filter returns the rows whose keys have not been seen and records their
// keys, in encounter order.
func (d *dedupSet) filter(rows [][]string) [][]string {
	fresh := make([][]string, 0, len(rows))
	for _, row := range rows {
		key := rowKey(row)
		if _, ok := d.seen[key]; ok {
			continue
		}
		d.seen[key] = struct{}{}
		fresh = append(fresh, row)
	}
	return fresh
}

// size reports how many distinct row keys the set holds.
func (d *dedupSet) size() int {
	return len(d.seen)
}
