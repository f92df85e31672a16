package exporter

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ecompulse/internal/kpi"
	"ecompulse/internal/services"
	"ecompulse/pkg/contracts/domain"
)

func sampleReport(t *testing.T) *KPIReport {
	t.Helper()

	p, err := domain.NewPeriod(
		time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return &KPIReport{
		Dashboard: &services.DashboardResult{
			Current: services.KPISnapshot{
				Period:            p,
				TotalRevenue:      150,
				TotalOrders:       1,
				AverageOrderValue: 150,
			},
			Comparison: services.KPISnapshot{
				Period:            p.Comparison(),
				TotalRevenue:      80,
				TotalOrders:       1,
				AverageOrderValue: 80,
			},
			RevenueGrowth:    kpi.Value(0.875),
			OrderCountGrowth: kpi.Value(0),
			AOVGrowth:        kpi.None(),
		},
		Monthly: &services.MonthlySeriesResult{
			Monthly: []kpi.MonthRevenue{
				{Year: 2023, Month: 1, Revenue: 80},
				{Year: 2023, Month: 2, Revenue: 150},
			},
			Growth: []kpi.NullFloat{kpi.None(), kpi.Value(0.875)},
		},
		Categories: []kpi.BucketRevenue{
			{Name: "books", Revenue: 180},
			{Name: "toys", Revenue: 50},
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func TestKPIReport_Sections(t *testing.T) {
	sections := sampleReport(t).sections()

	require.Len(t, sections, 3)
	assert.Equal(t, "summary", sections[0].Name)
	assert.Equal(t, "monthly", sections[1].Name)
	assert.Equal(t, "categories", sections[2].Name)

	// Absent growth renders as an empty cell, never 0.
	summary := sections[0]
	assert.Equal(t, []string{"Average Order Value", "150.00", "80.00", ""}, summary.Rows[3])
	assert.Equal(t, []string{"Total Revenue", "150.00", "80.00", "87.5%"}, summary.Rows[1])

	monthly := sections[1]
	assert.Equal(t, []string{"2023-01", "80.00", ""}, monthly.Rows[0])
	assert.Equal(t, []string{"2023-02", "150.00", "87.5%"}, monthly.Rows[1])
}

func TestWriteCSVReport(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter(paths)

	written, err := WriteCSVReport(writer, "kpi_feb", sampleReport(t))
	require.NoError(t, err)
	require.Equal(t, []string{"kpi_feb_summary.csv", "kpi_feb_monthly.csv", "kpi_feb_categories.csv"}, written)

	for _, name := range written {
		_, err := os.Stat(paths.ReportFile(name))
		assert.NoError(t, err, name)
	}
}

func TestExcelWriter_WriteReport(t *testing.T) {
	paths := testPaths(t)
	writer := NewExcelWriter(paths)

	path, err := writer.WriteReport("kpi_feb.xlsx", sampleReport(t))
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"summary", "monthly", "categories"}, f.GetSheetList())

	revenue, err := f.GetCellValue("summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "150.00", revenue)

	month, err := f.GetCellValue("monthly", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2023-01", month)
}

func TestExcelWriter_EmptyReport(t *testing.T) {
	writer := NewExcelWriter(testPaths(t))

	_, err := writer.WriteReport("empty.xlsx", &KPIReport{})
	assert.Error(t, err)
}
