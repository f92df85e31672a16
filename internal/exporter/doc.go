// Package exporter writes computed KPI reports to disk as CSV files and
// xlsx workbooks. CSV output carries a UTF-8 BOM so Excel opens it cleanly.
package exporter
