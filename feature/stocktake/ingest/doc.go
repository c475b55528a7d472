// Package ingest normalizes heterogeneous spreadsheet exports into count and
// journal records.
//
// Warehouse count files arrive as tab, comma, semicolon or pipe delimited
// text, with or without headers, with inconsistent header spellings and with
// up to four recount columns (Count2..Count5) per item. The ledger ("journal")
// export has its own spelling universe for on-hand quantity and cost price.
// This package resolves all of that through a single declarative synonym
// table and the recount-precedence rule.
//
// # Components
//
//   - ParseCounts: count blob -> CountFile (meta + entries), with a
//     headerless fallback parser.
//   - ParseJournal: ledger blob -> JournalRecord slice, with its own
//     headerless fallback.
//   - IsValidQuantity / ToNum: tolerant numeric handling; scan timestamps and
//     ID-like numerals are rejected as quantities, unparsable cells become 0.
//
// Parsing never returns an error: malformed content degrades to fewer (or
// zero) entries, and callers surface "zero entries" as a user-facing warning.
package ingest
