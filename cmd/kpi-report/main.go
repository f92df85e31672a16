package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"ecompulse/internal/config"
	"ecompulse/internal/dataset"
	"ecompulse/internal/exporter"
	"ecompulse/internal/services"
	"ecompulse/pkg/contracts/domain"
)

const dateLayout = "2006-01-02"

func main() {
	dataDir := flag.String("data", "", "dataset directory (defaults to configured data dir)")
	outputDir := flag.String("out", "", "output directory for report files (defaults to configured reports dir)")
	startArg := flag.String("start", "", "period start date, YYYY-MM-DD (required)")
	endArg := flag.String("end", "", "period end date, YYYY-MM-DD (required)")
	name := flag.String("name", "", "report base name (defaults to kpi_<start>_<end>)")
	excel := flag.Bool("excel", true, "also write an xlsx workbook")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outputDir != "" {
		cfg.Paths.ReportsDir = *outputDir
	}

	paths, err := config.NewPaths(cfg.Paths)
	if err != nil {
		slog.Error("Failed to resolve paths", "error", err)
		os.Exit(1)
	}

	period, err := parsePeriod(*startArg, *endArg)
	if err != nil {
		slog.Error("Invalid period", "error", err)
		flag.Usage()
		os.Exit(1)
	}

	if *name == "" {
		*name = fmt.Sprintf("kpi_%s_%s", *startArg, *endArg)
	}

	ctx := context.Background()
	cache := dataset.NewCache(paths.DataDir, slog.Default())
	service := services.NewDashboardService(cache, slog.Default())

	slog.Info("Computing KPI report",
		"data_dir", paths.DataDir,
		"period", period.String())

	report, err := buildReport(ctx, service, period)
	if err != nil {
		slog.Error("Failed to compute report", "error", err)
		os.Exit(1)
	}

	csvWriter := exporter.NewCSVWriter(paths)
	written, err := exporter.WriteCSVReport(csvWriter, *name, report)
	if err != nil {
		slog.Error("Failed to write CSV report", "error", err)
		os.Exit(1)
	}
	for _, f := range written {
		slog.Info("Wrote report file", "file", paths.ReportFile(f))
	}

	if *excel {
		excelWriter := exporter.NewExcelWriter(paths)
		path, err := excelWriter.WriteReport(*name+".xlsx", report)
		if err != nil {
			slog.Error("Failed to write Excel report", "error", err)
			os.Exit(1)
		}
		slog.Info("Wrote report file", "file", path)
	}
}

func parsePeriod(startArg, endArg string) (domain.Period, error) {
	if startArg == "" || endArg == "" {
		return domain.Period{}, fmt.Errorf("both -start and -end are required")
	}
	start, err := time.Parse(dateLayout, startArg)
	if err != nil {
		return domain.Period{}, fmt.Errorf("invalid -start date %q: %w", startArg, err)
	}
	end, err := time.Parse(dateLayout, endArg)
	if err != nil {
		return domain.Period{}, fmt.Errorf("invalid -end date %q: %w", endArg, err)
	}
	return domain.NewPeriod(start, end)
}

func buildReport(ctx context.Context, service *services.DashboardService, period domain.Period) (*exporter.KPIReport, error) {
	dashboard, err := service.Snapshot(ctx, period)
	if err != nil {
		return nil, err
	}
	monthly, err := service.MonthlySeries(ctx, period)
	if err != nil {
		return nil, err
	}
	categories, err := service.RevenueByCategory(ctx, period)
	if err != nil {
		return nil, err
	}
	states, err := service.RevenueByState(ctx, period)
	if err != nil {
		return nil, err
	}
	reviews, err := service.ReviewAnalytics(ctx, period)
	if err != nil {
		return nil, err
	}

	return &exporter.KPIReport{
		Dashboard:   dashboard,
		Monthly:     monthly,
		Categories:  categories,
		States:      states,
		Reviews:     reviews,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
