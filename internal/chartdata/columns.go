// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartdata

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// MissingColumnsError reports required columns absent from an input.
type MissingColumnsError struct {
	Path    string
	Want    []string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s must contain columns %s (missing %s)", e.Path, strings.Join(e.Want, ", "), strings.Join(e.Missing, ", "))
}

// NotNumericError reports a column that should hold numbers but
// holds at least one cell that does not parse as one.
type NotNumericError struct {
	Column string
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("%s column must contain numeric values", e.Column)
}

// Require checks that t has every column in cols. path is only used
// for the error message.
func Require(t *table.Table, path string, cols ...string) error {
	var missing []string
	for _, col := range cols {
		if t.Column(col) == nil {
			missing = append(missing, col)
		}
	}
	if missing != nil {
		return &MissingColumnsError{Path: path, Want: cols, Missing: missing}
	}
	return nil
}

// Floats returns column col of t as float64s.
func Floats(t *table.Table, col string) ([]float64, error) {
	if t.Len() == 0 {
		return nil, nil
	}
	c := t.MustColumn(col)
	if _, ok := c.([]string); ok {
		return nil, &NotNumericError{col}
	}
	var xs []float64
	slice.Convert(&xs, c)
	return xs, nil
}

// Strings returns column col of t formatted as strings.
func Strings(t *table.Table, col string) []string {
	c := t.MustColumn(col)
	if ss, ok := c.([]string); ok {
		return append([]string(nil), ss...)
	}
	v := reflect.ValueOf(c)
	out := make([]string, v.Len())
	for i := range out {
		out[i] = fmt.Sprint(v.Index(i).Interface())
	}
	return out
}
