// Package catalog implements the stock catalog feature.
//
// The catalog is the master-data side of reconciliation: a stock_items table
// holding the item name, on-hand quantity of record and unit cost per item
// code. The Service implements variance.Catalog, so the stocktake feature
// receives master data as an injected lookup interface rather than reaching
// into shared state.
//
// The feature also owns the "apply" step: writing counted quantities from a
// finished variance report back as the new on-hand stock. Because that
// overwrites the quantity of record it is guarded by an explicit confirm
// flag.
//
// # HTTP Endpoints
//
//   - GET /catalog/:code : Look up one stock item.
//   - POST /catalog/apply : Apply counted quantities (requires confirm=true).
//
// The feature is disabled entirely when no catalog database is configured;
// variance reports then mark unmatched codes as missing.
package catalog
