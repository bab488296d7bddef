// Package spectro buckets a numeric field over time into a 2-D density
// grid: per-row value histograms painted by a two-threshold color scheme,
// with cursor navigation over non-zero columns and column marking.
package spectro
