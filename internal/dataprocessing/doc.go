// Package dataprocessing turns the six raw tables into analysis-ready sales
// records: it parses order timestamps, joins order items with order metadata,
// restricts to delivered orders, slices by period, and derives delivery
// durations. Every function returns new slices; inputs are never mutated.
package dataprocessing
