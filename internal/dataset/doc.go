// Package dataset reads the six raw e-commerce tables from a data directory
// and caches the loaded and cleaned result keyed by the files' modification
// signature, so repeated dashboard interactions reuse the in-memory tables
// instead of re-reading and re-joining the files.
package dataset
