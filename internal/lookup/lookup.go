// Package lookup provides VLOOKUP-style searches over rectangular
// string tables. Tables come from the spreadsheet source as row-major
// grids; this package does not know or care how they are stored.
package lookup

import "strings"

// Table is an ordered sequence of rows, each a slice of cell values.
// Rows may be ragged; a missing cell reads as absent, not empty-match.
type Table [][]string

// Result is the outcome of a single column lookup. Found distinguishes
// a legitimate empty value from a miss; callers treat a miss as "use
// the default coefficient".
type Result struct {
	Value string
	Found bool
}

// Vertical scans the table top to bottom and returns the value in
// returnCol of the first row whose keyCol cell, whitespace-trimmed,
// equals the trimmed lookupValue (case-sensitive). First match wins.
//
// Returns ("", false) when the table is empty, the key or return
// column falls outside the matching row, or no row matches.
//
// The legacy system declared an approximate-match mode
// (exactMatch=false) that was never implemented; it is deliberately
// omitted here and every lookup is exact.
func Vertical(t Table, lookupValue string, keyCol, returnCol int) (string, bool) {
	if keyCol < 0 || returnCol < 0 {
		return "", false
	}

	key := strings.TrimSpace(lookupValue)
	for _, row := range t {
		if keyCol >= len(row) {
			continue
		}
		if strings.TrimSpace(row[keyCol]) != key {
			continue
		}
		if returnCol >= len(row) {
			return "", false
		}
		return row[returnCol], true
	}
	return "", false
}

// VerticalMultiple performs one independent Vertical lookup per entry
// in returnCols, all against the same key. Each result carries its own
// found flag; one missing column does not poison the others.
func VerticalMultiple(t Table, lookupValue string, keyCol int, returnCols []int) []Result {
	results := make([]Result, len(returnCols))
	for i, col := range returnCols {
		v, ok := Vertical(t, lookupValue, keyCol, col)
		results[i] = Result{Value: v, Found: ok}
	}
	return results
}
