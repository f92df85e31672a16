package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ecompulse/internal/config"
)

// ExcelWriter writes KPI reports as xlsx workbooks, one sheet per section.
type ExcelWriter struct {
	paths *config.Paths
}

// NewExcelWriter creates a new Excel writer instance
func NewExcelWriter(paths *config.Paths) *ExcelWriter {
	return &ExcelWriter{paths: paths}
}

// WriteReport writes the report to an xlsx file and returns the full path.
func (w *ExcelWriter) WriteReport(fileName string, report *KPIReport) (string, error) {
	fullPath := fileName
	if !filepath.IsAbs(fullPath) {
		fullPath = w.paths.ReportFile(fileName)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sections := report.sections()
	if len(sections) == 0 {
		return "", fmt.Errorf("report has no sections to write")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	for i, section := range sections {
		sheet := section.Name
		if i == 0 {
			// Rename the default sheet instead of leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return "", fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return "", fmt.Errorf("failed to create sheet %s: %w", sheet, err)
			}
		}

		if err := w.writeSheet(f, sheet, section, headerStyle); err != nil {
			return "", err
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Excel report written",
		slog.String("path", fullPath),
		slog.Int("sheets", len(sections)))

	return fullPath, nil
}

func (w *ExcelWriter) writeSheet(f *excelize.File, sheet string, section reportSection, headerStyle int) error {
	headers := make([]interface{}, len(section.Headers))
	for i, h := range section.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers on %s: %w", sheet, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(section.Headers))
	if err == nil {
		f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)
	}

	for i, row := range section.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d on %s: %w", i+2, sheet, err)
		}
	}

	return nil
}
