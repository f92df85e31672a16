package exporter

import (
	"fmt"
	"time"

	"ecompulse/internal/kpi"
	"ecompulse/internal/services"
)

// KPIReport bundles the computed outputs of one reporting run. Sections with
// a nil value are skipped by the writers.
type KPIReport struct {
	Dashboard   *services.DashboardResult
	Monthly     *services.MonthlySeriesResult
	Categories  []kpi.BucketRevenue
	States      []kpi.BucketRevenue
	Reviews     *services.ReviewAnalyticsResult
	GeneratedAt time.Time
}

// reportSection is one table of the report: a name, a header row, and rows.
type reportSection struct {
	Name    string
	Headers []string
	Rows    [][]string
}

// sections flattens the report into ordered tables shared by the CSV and
// Excel writers.
func (r *KPIReport) sections() []reportSection {
	var out []reportSection

	if r.Dashboard != nil {
		d := r.Dashboard
		out = append(out, reportSection{
			Name:    "summary",
			Headers: []string{"Metric", "Current", "Comparison", "Growth"},
			Rows: [][]string{
				{"Period", d.Current.Period.String(), d.Comparison.Period.String(), ""},
				{"Total Revenue", formatFloat(d.Current.TotalRevenue), formatFloat(d.Comparison.TotalRevenue), formatNullPercent(d.RevenueGrowth)},
				{"Total Orders", formatInt(d.Current.TotalOrders), formatInt(d.Comparison.TotalOrders), formatNullPercent(d.OrderCountGrowth)},
				{"Average Order Value", formatFloat(d.Current.AverageOrderValue), formatFloat(d.Comparison.AverageOrderValue), formatNullPercent(d.AOVGrowth)},
				{"Average Delivery Days", formatNullFloat(d.Current.AverageDeliveryDays), formatNullFloat(d.Comparison.AverageDeliveryDays), ""},
				{"Average Review Score", formatNullFloat(d.Current.AverageReviewScore), formatNullFloat(d.Comparison.AverageReviewScore), ""},
			},
		})
	}

	if r.Monthly != nil {
		rows := make([][]string, 0, len(r.Monthly.Monthly))
		for i, m := range r.Monthly.Monthly {
			growth := ""
			if i < len(r.Monthly.Growth) {
				growth = formatNullPercent(r.Monthly.Growth[i])
			}
			rows = append(rows, []string{
				fmt.Sprintf("%04d-%02d", m.Year, m.Month),
				formatFloat(m.Revenue),
				growth,
			})
		}
		out = append(out, reportSection{
			Name:    "monthly",
			Headers: []string{"Month", "Revenue", "MoM Growth"},
			Rows:    rows,
		})
	}

	if len(r.Categories) > 0 {
		out = append(out, reportSection{
			Name:    "categories",
			Headers: []string{"Category", "Revenue"},
			Rows:    bucketRows(r.Categories),
		})
	}

	if len(r.States) > 0 {
		out = append(out, reportSection{
			Name:    "states",
			Headers: []string{"State", "Revenue"},
			Rows:    bucketRows(r.States),
		})
	}

	if r.Reviews != nil {
		rows := make([][]string, 0, len(r.Reviews.BucketSummary))
		for _, b := range r.Reviews.BucketSummary {
			rows = append(rows, []string{b.Bucket, formatInt(b.Orders), formatNullFloat(b.AvgReviewScore)})
		}
		out = append(out, reportSection{
			Name:    "reviews",
			Headers: []string{"Delivery Bucket", "Orders", "Avg Review Score"},
			Rows:    rows,
		})

		rows = make([][]string, 0, len(r.Reviews.Distribution))
		for _, s := range r.Reviews.Distribution {
			rows = append(rows, []string{formatInt(s.Score), formatInt(s.Count)})
		}
		out = append(out, reportSection{
			Name:    "review_scores",
			Headers: []string{"Score", "Count"},
			Rows:    rows,
		})
	}

	return out
}

func bucketRows(buckets []kpi.BucketRevenue) [][]string {
	rows := make([][]string, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []string{b.Name, formatFloat(b.Revenue)})
	}
	return rows
}

// WriteCSVReport writes one CSV file per report section. baseName is the
// file-name prefix, so "kpi_2023" yields kpi_2023_summary.csv and so on.
func WriteCSVReport(w *CSVWriter, baseName string, report *KPIReport) ([]string, error) {
	var written []string
	for _, section := range report.sections() {
		name := fmt.Sprintf("%s_%s.csv", baseName, section.Name)
		if err := w.WriteSimpleCSV(name, section.Headers, section.Rows); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}
