// Package main provides a tool to generate a starter factors workbook
// for the biocalc server.
//
// The generated workbook has the layout the server expects: per-biomass
// coefficients on the "Fatores" sheet (type, impact factor, calorific
// value, starting at B2) and one dropdown list per column on the
// "Opcoes" sheet (biomass, state, cultivation system, vehicle, headers
// in row 1). Numbers are written as pt-BR decimal strings, matching the
// form inputs the server parses.
//
// Usage:
//
//	go run ./tools/generate-workbook [--out FILE] [--force]
//
// Flags:
//
//	--out    Output workbook path (default: ./fatores.xlsx)
//	--force  Overwrite an existing file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

const (
	factorsSheet = "Fatores"
	optionsSheet = "Opcoes"
)

// factorRow seeds one biomass type with its default coefficients.
// Values are representative starting points; operators replace them
// with certified figures for their own supply chain.
type factorRow struct {
	biomass   string
	impact    string // kg CO2e per kg biomass
	calorific string // MJ per kg
}

var defaultFactors = []factorRow{
	{"eucalipto", "0,04", "18,2"},
	{"pinus", "0,05", "19,1"},
	{"bagaco de cana", "0,02", "15,8"},
	{"casca de arroz", "0,03", "13,5"},
	{"residuo florestal", "0,01", "16,5"},
	{"serragem", "0,02", "17,0"},
}

var defaultOptions = map[string][]string{
	"A": {"eucalipto", "pinus", "bagaco de cana", "casca de arroz", "residuo florestal", "serragem"},
	"B": {"SP", "MG", "PR", "SC", "RS", "MS", "GO", "BA", "MT"},
	"C": {"plantio proprio", "fomento", "residuo de terceiros"},
	"D": {"truck sider", "bitrem", "rodotrem", "vanderleia"},
}

var optionHeaders = map[string]string{
	"A": "Biomassa",
	"B": "Estado",
	"C": "Sistema de cultivo",
	"D": "Veiculo",
}

func main() {
	out := flag.String("out", "./fatores.xlsx", "Output workbook path")
	force := flag.Bool("force", false, "Overwrite an existing file")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", *out)
			os.Exit(1)
		}
	}

	f, err := buildWorkbook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building workbook: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := f.SaveAs(*out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d biomass types, %d option columns)\n",
		*out, len(defaultFactors), len(defaultOptions))
}

func buildWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()

	if _, err := f.NewSheet(factorsSheet); err != nil {
		return nil, err
	}
	if err := setRow(f, factorsSheet, "B", 1, "Biomassa", "Fator de impacto (kg CO2e/kg)", "Poder calorifico (MJ/kg)"); err != nil {
		return nil, err
	}
	for i, row := range defaultFactors {
		if err := setRow(f, factorsSheet, "B", 2+i, row.biomass, row.impact, row.calorific); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(optionsSheet); err != nil {
		return nil, err
	}
	for col, header := range optionHeaders {
		if err := f.SetCellStr(optionsSheet, col+"1", header); err != nil {
			return nil, err
		}
	}
	for col, values := range defaultOptions {
		for i, v := range values {
			if err := f.SetCellStr(optionsSheet, fmt.Sprintf("%s%d", col, 2+i), v); err != nil {
				return nil, err
			}
		}
	}

	// Drop the default sheet so the workbook opens on the data.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

// setRow writes cells left to right starting at the named column.
func setRow(f *excelize.File, sheetName, startCol string, row int, values ...string) error {
	col, _, err := excelize.CellNameToCoordinates(fmt.Sprintf("%s%d", startCol, row))
	if err != nil {
		return err
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+i, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheetName, cell, v); err != nil {
			return err
		}
	}
	return nil
}
