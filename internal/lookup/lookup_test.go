package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var factorTable = Table{
	{"eucalipto", "0,05", "16,5"},
	{"pinus", "0,04", "17,2"},
	{"bagaco de cana", "0,03", "14,8"},
	{"pinus", "0,99", "99,9"}, // duplicate key, must never win
}

// TestVertical verifies exact-match vertical lookup semantics.
func TestVertical(t *testing.T) {
	tests := []struct {
		name      string
		table     Table
		key       string
		keyCol    int
		returnCol int
		want      string
		wantOK    bool
	}{
		{
			name:      "match first column",
			table:     factorTable,
			key:       "eucalipto",
			keyCol:    0,
			returnCol: 1,
			want:      "0,05",
			wantOK:    true,
		},
		{
			name:      "match second value column",
			table:     factorTable,
			key:       "bagaco de cana",
			keyCol:    0,
			returnCol: 2,
			want:      "14,8",
			wantOK:    true,
		},
		{
			name:      "first match wins over duplicate",
			table:     factorTable,
			key:       "pinus",
			keyCol:    0,
			returnCol: 1,
			want:      "0,04",
			wantOK:    true,
		},
		{
			name:      "lookup value is trimmed",
			table:     factorTable,
			key:       "  eucalipto  ",
			keyCol:    0,
			returnCol: 2,
			want:      "16,5",
			wantOK:    true,
		},
		{
			name:      "cell value is trimmed before compare",
			table:     Table{{" eucalipto ", "0,05"}},
			key:       "eucalipto",
			keyCol:    0,
			returnCol: 1,
			want:      "0,05",
			wantOK:    true,
		},
		{
			name:      "case sensitive",
			table:     factorTable,
			key:       "Eucalipto",
			keyCol:    0,
			returnCol: 1,
			wantOK:    false,
		},
		{
			name:      "missing key",
			table:     factorTable,
			key:       "acacia",
			keyCol:    0,
			returnCol: 1,
			wantOK:    false,
		},
		{
			name:      "empty table",
			table:     Table{},
			key:       "eucalipto",
			keyCol:    0,
			returnCol: 1,
			wantOK:    false,
		},
		{
			name:      "return column beyond row",
			table:     Table{{"eucalipto"}},
			key:       "eucalipto",
			keyCol:    0,
			returnCol: 3,
			wantOK:    false,
		},
		{
			name:      "negative column offsets",
			table:     factorTable,
			key:       "eucalipto",
			keyCol:    -1,
			returnCol: 1,
			wantOK:    false,
		},
		{
			name:      "miss is distinguishable from empty value",
			table:     Table{{"eucalipto", ""}},
			key:       "eucalipto",
			keyCol:    0,
			returnCol: 1,
			want:      "",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Vertical(tt.table, tt.key, tt.keyCol, tt.returnCol)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestVerticalMultiple verifies that per-column lookups are independent.
func TestVerticalMultiple(t *testing.T) {
	table := Table{
		{"eucalipto", "0,05"}, // row has no third column
	}

	results := VerticalMultiple(table, "eucalipto", 0, []int{1, 2})
	require.Len(t, results, 2)

	assert.True(t, results[0].Found)
	assert.Equal(t, "0,05", results[0].Value)

	// The out-of-range column misses without affecting the first.
	assert.False(t, results[1].Found)
	assert.Empty(t, results[1].Value)
}

// TestVerticalMultipleEmpty verifies behavior with no requested columns.
func TestVerticalMultipleEmpty(t *testing.T) {
	results := VerticalMultiple(factorTable, "pinus", 0, nil)
	assert.Empty(t, results)
}
