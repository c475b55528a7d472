package tabular

import "strings"

// Normalize reduces a header name to its comparable form: lowercase, all
// whitespace removed, and every character outside [a-z0-9] dropped. Distinct
// raw headers collide on purpose: "Bin Location", "BINLOCATION" and
// "bin_location" all normalize to "binlocation".
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// HeaderIndex maps normalized header names to column positions for one file.
// It is built once per file so per-row lookups stay O(1).
type HeaderIndex map[string]int

// NewHeaderIndex builds the index from the raw header row. When two headers
// normalize to the same key, the last occurrence wins.
func NewHeaderIndex(headers []string) HeaderIndex {
	ix := make(HeaderIndex, len(headers))
	for i, h := range headers {
		key := Normalize(h)
		if key == "" {
			continue
		}
		ix[key] = i
	}
	return ix
}

// Col returns the column position for a raw (unnormalized) header name.
func (ix HeaderIndex) Col(name string) (int, bool) {
	col, ok := ix[Normalize(name)]
	return col, ok
}

// Pick resolves a value from row by trying each candidate header name in
// priority order and returning the first non-empty trimmed cell. If none of
// the candidates resolve directly, the index itself is scanned for any key in
// the normalized candidate set. Returns "" when nothing matches.
func (ix HeaderIndex) Pick(row []string, names ...string) string {
	for _, name := range names {
		if col, ok := ix[Normalize(name)]; ok && col < len(row) {
			if v := strings.TrimSpace(row[col]); v != "" {
				return v
			}
		}
	}

	// Fallback: walk the index for any normalized candidate. Catches headers
	// registered under a later duplicate column.
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[Normalize(name)] = struct{}{}
	}
	for key, col := range ix {
		if _, ok := wanted[key]; !ok {
			continue
		}
		if col < len(row) {
			if v := strings.TrimSpace(row[col]); v != "" {
				return v
			}
		}
	}
	return ""
}
