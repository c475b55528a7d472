// Package variance reconciles physical count records against book (ledger)
// quantities and produces the per-item variance report.
//
// The engine groups count records by upper-cased item code, picks one
// authoritative counted quantity per group via recount precedence, merges in
// the book quantity and cost price supplied by the caller (with an optional
// injected Catalog as master-data fallback), and aggregates bin locations.
//
// Rows come out sorted by item code and the computation is a pure function:
// it holds no state and re-running it on the same inputs yields the same
// rows.
package variance
