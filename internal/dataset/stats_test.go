package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/glass/internal/dataset"
)

func TestFrame_Describe(t *testing.T) {
	stats := sampleFrame().Describe()

	require.Len(t, stats, 4)

	id := stats[0]
	require.Equal(t, "id", id.Column)
	require.Equal(t, 4, id.Count)
	require.InDelta(t, 2.5, id.Mean, 1e-9)
	require.InDelta(t, math.Sqrt(5.0/3.0), id.Std, 1e-9)
	require.InDelta(t, 1.0, id.Min, 1e-9)
	require.InDelta(t, 1.75, id.Q25, 1e-9)
	require.InDelta(t, 2.5, id.Median, 1e-9)
	require.InDelta(t, 3.25, id.Q75, 1e-9)
	require.InDelta(t, 4.0, id.Max, 1e-9)

	weight := stats[2]
	require.Equal(t, "weight", weight.Column)
	require.Equal(t, 3, weight.Count)
	require.InDelta(t, 70.0/3.0, weight.Mean, 1e-9)
	require.InDelta(t, 15.0, weight.Q25, 1e-9)
	require.InDelta(t, 20.0, weight.Median, 1e-9)
	require.InDelta(t, 30.0, weight.Q75, 1e-9)
}

func TestFrame_Describe_SingleValue(t *testing.T) {
	stats := dataset.New([]string{"x"}, [][]string{{"7"}}).Describe()

	require.Len(t, stats, 1)
	require.Equal(t, 1, stats[0].Count)
	require.InDelta(t, 7.0, stats[0].Median, 1e-9)
	require.True(t, math.IsNaN(stats[0].Std))
}

func TestFrame_Correlation(t *testing.T) {
	m := sampleFrame().Correlation()

	require.Equal(t, []string{"id", "height", "weight", "neg"}, m.Names)
	require.Len(t, m.Values, 4)

	require.InDelta(t, 1.0, m.Values[0][0], 1e-9)
	require.InDelta(t, 1.0, m.Values[0][1], 1e-9)
	require.InDelta(t, 1.0, m.Values[0][2], 1e-9) // pairwise rows only
	require.InDelta(t, -1.0, m.Values[0][3], 1e-9)
	require.InDelta(t, m.Values[1][3], m.Values[3][1], 1e-12)
}

func TestFrame_Correlation_Degenerate(t *testing.T) {
	frame := dataset.New(
		[]string{"a", "const", "sparse"},
		[][]string{
			{"1", "5", "1"},
			{"2", "5", ""},
			{"3", "5", ""},
		},
	)

	m := frame.Correlation()

	require.True(t, math.IsNaN(m.Values[0][1]))
	require.True(t, math.IsNaN(m.Values[0][2]))
	require.InDelta(t, 1.0, m.Values[0][0], 1e-9)
}

func TestFrame_Summary(t *testing.T) {
	summary := sampleFrame().Summary("Phelps et al. 2016")

	require.Equal(t, "Dataset: Phelps et al. 2016\n"+
		"Shape: 4 rows, 6 columns\n"+
		"Columns: id, height, weight, species, notes...\n"+
		"Data types: {float64: 2, int64: 2, object: 2}\n"+
		"Missing values: 4", summary)
}

func TestFrame_Summary_FewColumns(t *testing.T) {
	summary := dataset.New([]string{"a", "b"}, [][]string{{"1", "x"}}).Summary("tiny")

	require.Contains(t, summary, "Columns: a, b\n")
	require.Contains(t, summary, "Data types: {int64: 1, object: 1}")
}
