package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecompulse/internal/config"
	"ecompulse/internal/kpi"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	dir := t.TempDir()
	return &config.Paths{
		DataDir:    filepath.Join(dir, "data"),
		ReportsDir: filepath.Join(dir, "reports"),
		LogsDir:    filepath.Join(dir, "logs"),
	}
}

func TestCSVWriter_WriteSimpleCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	headers := []string{"Category", "Revenue"}
	records := [][]string{
		{"books", "180.00"},
		{"toys", "50.00"},
	}

	require.NoError(t, writer.WriteSimpleCSV("categories.csv", headers, records))

	data, err := os.ReadFile(paths.ReportFile("categories.csv"))
	require.NoError(t, err)

	// BOM prefix for Excel, then plain CSV.
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, headers, rows[0])
	assert.Equal(t, records[0], rows[1])
}

func TestCSVWriter_AppendToCSV(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	require.NoError(t, writer.WriteSimpleCSV("out.csv", []string{"a"}, [][]string{{"1"}}))
	require.NoError(t, writer.AppendToCSV("out.csv", [][]string{{"2"}}))

	data, err := os.ReadFile(paths.ReportFile("out.csv"))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFormatNullFloat(t *testing.T) {
	assert.Equal(t, "13.40", formatFloat(13.4))
	assert.Equal(t, "", formatNullFloat(kpi.None()))
	assert.Equal(t, "87.5%", formatNullPercent(kpi.Value(0.875)))
	assert.Equal(t, "", formatNullPercent(kpi.None()))
}
