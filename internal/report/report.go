// Package report prints the exploratory analysis to a console.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/davidbz/glass/internal/dataset"
)

const bytesPerMB = 1024 * 1024

//nolint:gochecknoglobals // Read-only styles
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Printer writes report sections to an output stream.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Title prints the report banner.
func (p *Printer) Title(title string) {
	p.printf("%s\n%s\n", titleStyle.Render(title), strings.Repeat("=", 50))
}

// Info prints a progress line.
func (p *Printer) Info(format string, args ...any) {
	p.printf(format+"\n", args...)
}

// Success prints a completed step.
func (p *Printer) Success(format string, args ...any) {
	p.printf("%s %s\n", okStyle.Render("[ok]"), fmt.Sprintf(format, args...))
}

// Warn prints a step that degraded without failing the run.
func (p *Printer) Warn(format string, args ...any) {
	p.printf("%s %s\n", warnStyle.Render("[warn]"), fmt.Sprintf(format, args...))
}

// Failure prints a step that stopped the run.
func (p *Printer) Failure(format string, args ...any) {
	p.printf("%s %s\n", errStyle.Render("[error]"), fmt.Sprintf(format, args...))
}

// Section prints a section heading preceded by a blank line.
func (p *Printer) Section(heading string) {
	p.printf("\n%s\n", headingStyle.Render(heading))
}

// DatasetInfo prints shape, column names and estimated memory usage.
func (p *Printer) DatasetInfo(frame *dataset.Frame) {
	rows, cols := frame.Shape()

	p.Section("Dataset Info:")
	p.printf("Shape: (%d, %d)\n", rows, cols)
	p.printf("Columns: [%s]\n", strings.Join(frame.ColumnNames(), ", "))
	p.printf("Memory usage: %.2f MB\n", float64(frame.MemoryUsage())/bytesPerMB)
}

// Head prints the first n rows with a leading row index.
func (p *Printer) Head(frame *dataset.Frame, n int) {
	p.Section(fmt.Sprintf("First %d rows:", n))

	tw := p.table()
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(frame.ColumnNames(), "\t"))
	for i, row := range frame.Head(n) {
		cells := make([]string, len(row))
		for c, cell := range row {
			if cell == "" {
				cell = "NaN"
			}
			cells[c] = cell
		}
		fmt.Fprintf(tw, "%d\t%s\t\n", i, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// Describe prints descriptive statistics with one column per numeric column.
func (p *Printer) Describe(stats []dataset.Stats) {
	p.Section("Basic Statistics:")

	if len(stats) == 0 {
		p.printf("No numeric columns\n")
		return
	}

	rows := []struct {
		label string
		value func(s dataset.Stats) float64
	}{
		{"count", func(s dataset.Stats) float64 { return float64(s.Count) }},
		{"mean", func(s dataset.Stats) float64 { return s.Mean }},
		{"std", func(s dataset.Stats) float64 { return s.Std }},
		{"min", func(s dataset.Stats) float64 { return s.Min }},
		{"25%", func(s dataset.Stats) float64 { return s.Q25 }},
		{"50%", func(s dataset.Stats) float64 { return s.Median }},
		{"75%", func(s dataset.Stats) float64 { return s.Q75 }},
		{"max", func(s dataset.Stats) float64 { return s.Max }},
	}

	tw := p.table()
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Column
	}
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(names, "\t"))

	for _, row := range rows {
		cells := make([]string, len(stats))
		for i, s := range stats {
			cells[i] = formatStat(row.value(s))
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", row.label, strings.Join(cells, "\t"))
	}
	_ = tw.Flush()
}

// Missing prints per-column missing counts, or a confirmation when there are none.
func (p *Printer) Missing(frame *dataset.Frame) {
	counts := frame.MissingCounts()
	if len(counts) == 0 {
		p.printf("\n")
		p.Success("No missing values found")
		return
	}

	p.printf("\n")
	p.Warn("Missing Values:")
	p.counts(counts)
}

// DTypes prints how many columns have each dtype.
func (p *Printer) DTypes(frame *dataset.Frame) {
	p.Section("Data Types:")
	p.counts(frame.DTypeCounts())
}

// Suggestion prints the model's answer.
func (p *Printer) Suggestion(text string) {
	p.Section("AI Suggestions:")
	p.printf("%s\n", strings.TrimSpace(text))
}

// NextSteps prints the closing checklist.
func (p *Printer) NextSteps(figuresDir, notebooksDir string) {
	p.printf("\n")
	p.Success("Analysis complete!")
	p.Section("Next steps:")
	p.printf("1. Create notebooks in the %s/ directory\n", notebooksDir)
	p.printf("2. Check results in the %s/ directory\n", figuresDir)
	p.printf("3. Run `glass serve` to ask the AI helper for analysis suggestions\n")
}

func (p *Printer) counts(counts []dataset.NamedCount) {
	tw := p.table()
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\t\n", c.Name, c.Count)
	}
	_ = tw.Flush()
}

// table returns a right-aligned tabwriter. Every row must end in a tab so
// that its last cell is padded like the others.
func (p *Printer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(p.out, 0, 0, 2, ' ', tabwriter.AlignRight)
}

func (p *Printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}
