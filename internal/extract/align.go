// internal/extract/align.go
package extract

// alignRows turns per-selector value lists of possibly unequal length into
// rows. Each list is padded to the longest list's length by repeating its own
// last value (empty string when the list was empty), then the lists are
// transposed so row r, column i is list i's r-th padded value. Sparse trailing
// columns therefore inherit the last known value rather than leaving gaps.
//
// Rows where every column is empty are suppressed.
func alignRows(columns [][]string) [][]string {
	maxLen := 0
	for _, col := range columns {
		if len(col) > maxLen {
			maxLen = len(col)
		}
	}
	if maxLen == 0 {
		return nil
	}

	padded := make([][]string, len(columns))
	for i, col := range columns {
		padded[i] = padColumn(col, maxLen)
	}

	var rows [][]string
	for r := 0; r < maxLen; r++ {
		row := make([]string, len(columns))
		empty := true
		for i := range padded {
			row[i] = padded[i][r]
			if row[i] != "" {
				empty = false
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
	return rows
}

// padColumn extends values to the given length by repeating the last value.
// An empty input pads with empty strings.
func padColumn(values []string, length int) []string {
	if len(values) >= length {
		return values
	}

	last := ""
	if len(values) > 0 {
		last = values[len(values)-1]
	}

	padded := make([]string, 0, length)
	padded = append(padded, values...)
	for len(padded) < length {
		padded = append(padded, last)
	}
	return padded
}
