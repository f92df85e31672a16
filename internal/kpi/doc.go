// Package kpi computes the dashboard's business metrics over pre-filtered
// sales records. Every function is pure: no shared state, no side effects,
// input slices are never mutated. Period selection happens upstream; the
// engine is called once for the current period and once for the comparison
// period, and the caller derives deltas from the two result sets.
//
// Degenerate inputs are policy, not errors: empty inputs produce zeros or
// the NullFloat no-data sentinel as specified per function, so a dashboard
// can always render something for an empty period.
package kpi
