// Package sheet adapts a spreadsheet workbook into the rectangular
// string tables consumed by the lookup package. The spreadsheet-style
// addressing ("B7:C12") is an artifact of the backing store and stops
// here: callers downstream only ever see a lookup.Table plus column
// offsets.
package sheet

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/EriikGabriel/bio-calc-sub000/internal/lookup"
)

// Source reads tables and option lists from a workbook. It is
// read-only: nothing in this package ever writes a cell.
type Source struct {
	file   *excelize.File
	logger zerolog.Logger
}

// Open loads the workbook at path.
func Open(path string, logger zerolog.Logger) (*Source, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	return &Source{file: f, logger: logger}, nil
}

// Close releases the underlying workbook.
func (s *Source) Close() error {
	return s.file.Close()
}

// Table returns the rectangular range rng (e.g. "B7:D12") of the named
// sheet as a row-major lookup.Table. Cells are raw formatted values;
// cells outside the sheet's data read as empty strings.
func (s *Source) Table(sheetName, rng string) (lookup.Table, error) {
	startCol, startRow, endCol, endRow, err := parseRange(rng)
	if err != nil {
		return nil, err
	}

	table := make(lookup.Table, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		cells := make([]string, 0, endCol-startCol+1)
		for col := startCol; col <= endCol; col++ {
			name, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, fmt.Errorf("address cell (%d,%d): %w", col, row, err)
			}
			value, err := s.file.GetCellValue(sheetName, name)
			if err != nil {
				return nil, fmt.Errorf("read cell %s!%s: %w", sheetName, name, err)
			}
			cells = append(cells, value)
		}
		table = append(table, cells)
	}
	return table, nil
}

// Options returns the non-empty values of the first column of rng,
// preserving sheet order. Used to populate selector dropdowns
// (biomass types, states, vehicle types).
func (s *Source) Options(sheetName, rng string) ([]string, error) {
	table, err := s.Table(sheetName, rng)
	if err != nil {
		return nil, err
	}

	options := make([]string, 0, len(table))
	for _, row := range table {
		if len(row) == 0 {
			continue
		}
		if v := strings.TrimSpace(row[0]); v != "" {
			options = append(options, v)
		}
	}
	return options, nil
}

// parseRange splits an "A1:B2" style range into 1-based coordinates,
// normalizing a reversed range so the scan order stays top-to-bottom.
func parseRange(rng string) (startCol, startRow, endCol, endRow int, err error) {
	parts := strings.Split(strings.TrimSpace(rng), ":")
	if len(parts) != 2 {
		return 0, 0, 0, 0, fmt.Errorf("malformed range %q", rng)
	}

	startCol, startRow, err = excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("malformed range %q: %w", rng, err)
	}
	endCol, endRow, err = excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("malformed range %q: %w", rng, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return startCol, startRow, endCol, endRow, nil
}
