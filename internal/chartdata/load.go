// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartdata loads the small tabular inputs of the chart
// commands and checks that they have the expected shape.
//
// Inputs are CSV files (or, for convenience, the first sheet of an
// .xlsx workbook). They are loaded into a go-gg table with numeric
// coercion, so a column whose every cell parses as a number becomes
// a []int or []float64 and anything else stays a []string.
package chartdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"
	"github.com/xuri/excelize/v2"
)

// ErrEmpty is returned by Load when the input has no header row.
var ErrEmpty = errors.New("no header row")

// Load reads the table at path. The format is chosen by extension:
// ".xlsx" files are read with excelize, everything else as CSV.
//
// If path does not exist, the returned error wraps fs.ErrNotExist.
func Load(path string) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s not found: %w", path, fs.ErrNotExist)
		}
		return nil, err
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readWorkbook(path)
	default:
		rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	body := rows[1:]
	for i, row := range body {
		// Spreadsheets drop trailing empty cells.
		for len(row) < len(header) {
			row = append(row, "")
		}
		body[i] = row[:len(header)]
	}
	return table.TableFromStrings(header, body, true), nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

func readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet %q: %w", path, sheet, err)
	}
	// Drop trailing blank rows.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

// Fprint loads path and prints it as an aligned table to w.
func Fprint(w io.Writer, path string) error {
	t, err := Load(path)
	if err != nil {
		return err
	}
	table.Fprint(w, t)
	return nil
}
