// Package holdex turns a table of stock holding periods into the two
// artifacts the downstream analysis engine consumes: a calendar-day index of
// held stock codes, and a dictionary of asset metadata keyed by
// exchange-qualified code.
//
// The computation is a single synchronous pass: load the asset reference
// table, load the holdings table, enrich each record against the reference,
// sweep the holding intervals into a per-day index, and serialize both
// results as ordered JSON objects.
package holdex
