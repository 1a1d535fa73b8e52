package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/davidbz/glass/internal/dataset"
)

func TestLoad_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glass.csv")
	content := "RI,Na,Type\n1.52101,13.64,building\n1.51761,,\"vehicle, float\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	frame, err := dataset.Load(path)

	require.NoError(t, err)
	rows, cols := frame.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
	require.Equal(t, []string{"RI", "Na"}, frame.NumericColumns())
	require.Equal(t, 1, frame.TotalMissing())

	typ, _ := frame.Column("Type")
	require.Equal(t, "vehicle, float", typ.Raw[1])
}

func TestLoad_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Phelps2016.xlsx")

	book := excelize.NewFile()
	rows := [][]any{
		{"site", "depth", "count"},
		{"A", 1.25, 3},
		{"B", 2.5, 7},
		{"C", nil, 9},
	}
	for r, row := range rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, book.SetCellValue("Sheet1", cell, value))
		}
	}
	require.NoError(t, book.SaveAs(path))
	require.NoError(t, book.Close())

	frame, err := dataset.Load(path)

	require.NoError(t, err)
	require.Equal(t, []string{"site", "depth", "count"}, frame.ColumnNames())

	n, _ := frame.Shape()
	require.Equal(t, 3, n)

	depth, _ := frame.Column("depth")
	require.Equal(t, dataset.KindFloat64, depth.Kind)
	require.Equal(t, 1, depth.Missing)

	count, _ := frame.Column("count")
	require.Equal(t, dataset.KindInt64, count.Kind)
	require.Equal(t, []float64{3, 7, 9}, count.Values)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("should reject unknown extension", func(t *testing.T) {
		_, err := dataset.Load(filepath.Join(dir, "data.parquet"))
		require.ErrorIs(t, err, dataset.ErrUnsupportedFormat)
	})

	t.Run("should reject empty csv", func(t *testing.T) {
		path := filepath.Join(dir, "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o600))

		_, err := dataset.Load(path)
		require.ErrorIs(t, err, dataset.ErrEmptyFile)
	})

	t.Run("should fail on missing file", func(t *testing.T) {
		_, err := dataset.Load(filepath.Join(dir, "nope.xlsx"))
		require.Error(t, err)
	})
}
