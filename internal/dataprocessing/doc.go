// Package dataprocessing parses the three delimited retail sources (products,
// line items, sales) and computes the aggregate figures of the management
// report: highest-priced product, total inventory value, highest-revenue
// product, and total sales within a configured period.
//
// Parsing is deliberately tolerant: rows that cannot be understood are logged
// and skipped, and a missing input file degrades to an empty result instead of
// aborting the run.
package dataprocessing
