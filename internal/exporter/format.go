package exporter

import (
	"fmt"

	"ecompulse/internal/kpi"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	// Always format with exactly 2 decimal places for consistency
	// This ensures values like 13.4 appear as 13.40 in CSV
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

// formatPercent formats a growth rate as a percentage with 1 decimal place
func formatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// formatNullFloat renders an absent metric as an empty cell rather than 0,
// so a missing baseline stays distinguishable from a true zero.
func formatNullFloat(n kpi.NullFloat) string {
	if !n.Valid {
		return ""
	}
	return formatFloat(n.Float64)
}

// formatNullPercent is formatNullFloat for growth rates
func formatNullPercent(n kpi.NullFloat) string {
	if !n.Valid {
		return ""
	}
	return formatPercent(n.Float64)
}
