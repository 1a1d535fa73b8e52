package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const summaryColumnLimit = 5

// Stats holds the descriptive statistics of one numeric column.
type Stats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CorrelationMatrix is a square Pearson correlation matrix over numeric columns.
type CorrelationMatrix struct {
	Names  []string
	Values [][]float64
}

// Describe computes count, mean, sample standard deviation, extrema and
// quartiles for every numeric column. Missing cells are ignored.
func (f *Frame) Describe() []Stats {
	var out []Stats

	for _, col := range f.columns {
		if !col.Kind.Numeric() {
			continue
		}
		out = append(out, describe(col.Name, present(col.Values)))
	}

	return out
}

func describe(name string, xs []float64) Stats {
	s := Stats{Column: name, Count: len(xs)}

	if len(xs) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	s.Mean, s.Std = stat.MeanStdDev(sorted, nil)
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = quantile(sorted, 0.25)
	s.Median = quantile(sorted, 0.5)
	s.Q75 = quantile(sorted, 0.75)

	return s
}

// quantile interpolates linearly between closest ranks of sorted data.
func quantile(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo] + (h-float64(lo))*(sorted[lo+1]-sorted[lo])
}

// Correlation computes Pearson coefficients between every pair of numeric
// columns using the rows where both cells are present. Pairs with fewer than
// two shared rows, or a constant side, yield NaN.
func (f *Frame) Correlation() *CorrelationMatrix {
	var cols []*Column
	for _, col := range f.columns {
		if col.Kind.Numeric() {
			cols = append(cols, col)
		}
	}

	m := &CorrelationMatrix{
		Names:  make([]string, len(cols)),
		Values: make([][]float64, len(cols)),
	}

	for i, a := range cols {
		m.Names[i] = a.Name
		m.Values[i] = make([]float64, len(cols))
	}

	for i, a := range cols {
		for j := i; j < len(cols); j++ {
			r := pairwiseCorrelation(a.Values, cols[j].Values)
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}

	return m
}

func pairwiseCorrelation(a, b []float64) float64 {
	xs := make([]float64, 0, len(a))
	ys := make([]float64, 0, len(b))

	for i := range a {
		if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
			continue
		}
		xs = append(xs, a[i])
		ys = append(ys, b[i])
	}

	if len(xs) < 2 {
		return math.NaN()
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}

// Summary renders the short description embedded in model prompts.
func (f *Frame) Summary(name string) string {
	rows, cols := f.Shape()
	names := f.ColumnNames()

	shown := names
	suffix := ""
	if len(names) > summaryColumnLimit {
		shown = names[:summaryColumnLimit]
		suffix = "..."
	}

	dtypes := make([]string, 0, len(f.columns))
	for _, dc := range f.DTypeCounts() {
		dtypes = append(dtypes, fmt.Sprintf("%s: %d", dc.Name, dc.Count))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Dataset: %s\n", name)
	fmt.Fprintf(&sb, "Shape: %d rows, %d columns\n", rows, cols)
	fmt.Fprintf(&sb, "Columns: %s%s\n", strings.Join(shown, ", "), suffix)
	fmt.Fprintf(&sb, "Data types: {%s}\n", strings.Join(dtypes, ", "))
	fmt.Fprintf(&sb, "Missing values: %d", f.TotalMissing())

	return sb.String()
}

// Present returns the non-missing values of a numeric column.
func (c *Column) Present() []float64 {
	return present(c.Values)
}

func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
