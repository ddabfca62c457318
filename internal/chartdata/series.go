// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartdata

import (
	"sort"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
)

// A Series is a labeled column of values, such as sales by month.
type Series struct {
	Labels []string
	Values []float64
}

// LoadSeries loads path and returns the labelCol and valueCol columns.
// valueCol must be numeric. An input with a header but no rows
// returns an empty Series.
func LoadSeries(path, labelCol, valueCol string) (Series, error) {
	t, err := Load(path)
	if err != nil {
		return Series{}, err
	}
	if err := Require(t, path, labelCol, valueCol); err != nil {
		return Series{}, err
	}
	if t.Len() == 0 {
		return Series{}, nil
	}
	vals, err := Floats(t, valueCol)
	if err != nil {
		return Series{}, err
	}
	return Series{Strings(t, labelCol), vals}, nil
}

func (s Series) Len() int {
	return len(s.Values)
}

// Total returns the sum of the values.
func (s Series) Total() float64 {
	return floats.Sum(s.Values)
}

// Bounds returns the minimum and maximum value. It returns NaN, NaN
// for an empty Series.
func (s Series) Bounds() (lo, hi float64) {
	return stats.Bounds(s.Values)
}

// Head returns the first n points of s, or all of s if it is shorter.
func (s Series) Head(n int) Series {
	if n > s.Len() {
		n = s.Len()
	}
	if n < 0 {
		n = 0
	}
	return Series{s.Labels[:n], s.Values[:n]}
}

// DropNegative returns s without negative values and the number of
// points removed.
func DropNegative(s Series) (Series, int) {
	var out Series
	for i, v := range s.Values {
		if v < 0 {
			continue
		}
		out.Labels = append(out.Labels, s.Labels[i])
		out.Values = append(out.Values, v)
	}
	return out, s.Len() - out.Len()
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthIndex returns 0 for January through 11 for December, or -1.
// It accepts full month names and three letter abbreviations in any
// case.
func MonthIndex(label string) int {
	l := strings.ToLower(strings.TrimSpace(label))
	if len(l) < 3 {
		return -1
	}
	for i, name := range monthNames {
		if l == name || l == name[:3] {
			return i
		}
	}
	return -1
}

// SortMonths returns s ordered January through December. Labels
// that are not month names keep their relative order after all
// months.
func SortMonths(s Series) Series {
	idx := make([]int, s.Len())
	for i := range idx {
		idx[i] = i
	}
	key := func(i int) int {
		if m := MonthIndex(s.Labels[i]); m >= 0 {
			return m
		}
		return len(monthNames)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return key(idx[a]) < key(idx[b])
	})
	out := Series{make([]string, len(idx)), make([]float64, len(idx))}
	for i, j := range idx {
		out.Labels[i], out.Values[i] = s.Labels[j], s.Values[j]
	}
	return out
}
