// Package tabular provides low-level parsing primitives for irregular
// delimited text, as exported by spreadsheets and legacy warehouse systems.
//
// It deliberately does not use encoding/csv: uploaded count files routinely
// contain unterminated quotes, variable column counts, leading delimiters and
// mixed separators, all of which must be tolerated rather than rejected.
//
// # Components
//
//   - DetectDelimiter: guesses the separator (tab, semicolon, comma, pipe)
//     from a sample of the first lines.
//   - SplitLine: tokenizes one line with RFC 4180 style quoting, never fails.
//   - Normalize / HeaderIndex: lossy header-name normalization with
//     synonym-friendly column lookup.
//
// All functions are pure; the package holds no state.
package tabular
