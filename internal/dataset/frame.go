// Package dataset loads tabular files into an in-memory frame and computes
// the summary statistics the console report and the model prompts rely on.
package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column.
type Kind int

const (
	// KindObject holds free text, or any column with a non-numeric cell.
	KindObject Kind = iota

	// KindInt64 holds whole numbers with no missing cells.
	KindInt64

	// KindFloat64 holds numbers, possibly with missing cells.
	KindFloat64
)

// String returns the dtype label.
func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	default:
		return "object"
	}
}

// Numeric reports whether the kind carries numbers.
func (k Kind) Numeric() bool {
	return k == KindInt64 || k == KindFloat64
}

const bytesPerNumber = 8

//nolint:gochecknoglobals // Read-only lookup table
var missingMarkers = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
	"#N/A": {},
}

// Column is a single named column.
type Column struct {
	Name    string
	Kind    Kind
	Raw     []string  // trimmed cell text, "" where missing
	Values  []float64 // NaN where missing; nil for object columns
	Missing int
}

// Frame is a rectangular table with a header row.
type Frame struct {
	columns []*Column
	rows    int
}

// NamedCount pairs a label with a count.
type NamedCount struct {
	Name  string
	Count int
}

// New builds a frame from a header and data rows. Short rows are padded with
// missing cells, rows with no content are skipped, and blank or duplicate
// header names are made unique.
func New(header []string, records [][]string) *Frame {
	width := len(header)
	for _, record := range records {
		width = max(width, len(record))
	}

	names := uniqueNames(header, width)
	raw := make([][]string, width)
	rows := 0

	for _, record := range records {
		if isBlankRecord(record) {
			continue
		}
		for c := range width {
			cell := ""
			if c < len(record) {
				cell = strings.TrimSpace(record[c])
			}
			if isMissing(cell) {
				cell = ""
			}
			raw[c] = append(raw[c], cell)
		}
		rows++
	}

	columns := make([]*Column, width)
	for c := range width {
		if raw[c] == nil {
			raw[c] = []string{}
		}
		columns[c] = newColumn(names[c], raw[c])
	}

	return &Frame{columns: columns, rows: rows}
}

func newColumn(name string, raw []string) *Column {
	col := &Column{Name: name, Kind: KindObject, Raw: raw}

	values := make([]float64, len(raw))
	present := 0
	integral := true

	for i, cell := range raw {
		if cell == "" {
			col.Missing++
			values[i] = math.NaN()
			continue
		}

		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return withMissing(col)
		}
		if _, intErr := strconv.ParseInt(cell, 10, 64); intErr != nil {
			integral = false
		}
		values[i] = v
		present++
	}

	if present == 0 {
		return col
	}

	col.Values = values
	col.Kind = KindFloat64
	if integral && col.Missing == 0 {
		col.Kind = KindInt64
	}

	return col
}

// withMissing finishes counting missing cells for an object column.
func withMissing(col *Column) *Column {
	col.Missing = 0
	for _, cell := range col.Raw {
		if cell == "" {
			col.Missing++
		}
	}
	return col
}

func uniqueNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for c := range width {
		name := ""
		if c < len(header) {
			name = strings.TrimSpace(header[c])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", c)
		}

		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		} else {
			seen[name] = 0
		}
		names[c] = name
	}

	return names
}

func isMissing(cell string) bool {
	_, ok := missingMarkers[cell]
	return ok
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Shape returns the number of rows and columns.
func (f *Frame) Shape() (int, int) {
	return f.rows, len(f.columns)
}

// Columns returns the columns in file order.
func (f *Frame) Columns() []*Column {
	return f.columns
}

// Column looks a column up by name.
func (f *Frame) Column(name string) (*Column, bool) {
	for _, col := range f.columns {
		if col.Name == name {
			return col, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in file order.
func (f *Frame) ColumnNames() []string {
	names := make([]string, len(f.columns))
	for i, col := range f.columns {
		names[i] = col.Name
	}
	return names
}

// NumericColumns returns the names of int64 and float64 columns in file order.
func (f *Frame) NumericColumns() []string {
	var names []string
	for _, col := range f.columns {
		if col.Kind.Numeric() {
			names = append(names, col.Name)
		}
	}
	return names
}

// Head returns up to n rows of raw cell text.
func (f *Frame) Head(n int) [][]string {
	n = min(max(n, 0), f.rows)

	out := make([][]string, n)
	for r := range n {
		row := make([]string, len(f.columns))
		for c, col := range f.columns {
			row[c] = col.Raw[r]
		}
		out[r] = row
	}
	return out
}

// MissingCounts returns the columns that have missing cells, in file order.
func (f *Frame) MissingCounts() []NamedCount {
	var counts []NamedCount
	for _, col := range f.columns {
		if col.Missing > 0 {
			counts = append(counts, NamedCount{Name: col.Name, Count: col.Missing})
		}
	}
	return counts
}

// TotalMissing returns the number of missing cells in the frame.
func (f *Frame) TotalMissing() int {
	total := 0
	for _, col := range f.columns {
		total += col.Missing
	}
	return total
}

// DTypeCounts returns how many columns have each dtype, most frequent first.
func (f *Frame) DTypeCounts() []NamedCount {
	byKind := make(map[string]int)
	for _, col := range f.columns {
		byKind[col.Kind.String()]++
	}

	counts := make([]NamedCount, 0, len(byKind))
	for name, count := range byKind {
		counts = append(counts, NamedCount{Name: name, Count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})

	return counts
}

// MemoryUsage estimates the frame size in bytes: eight per numeric cell and
// the text length of every other cell.
func (f *Frame) MemoryUsage() int64 {
	var total int64
	for _, col := range f.columns {
		if col.Kind.Numeric() {
			total += int64(len(col.Values) * bytesPerNumber)
			continue
		}
		for _, cell := range col.Raw {
			total += int64(len(cell))
		}
	}
	return total
}
