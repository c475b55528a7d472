package ingest

import (
	"regexp"
	"strconv"
	"strings"

	"stocktake-manager/core/tabular"
)

// CountColumns lists the candidate quantity columns in recount precedence
// order: a later recount supersedes earlier ones, and the plain quantity
// column is the weakest candidate.
var CountColumns = []string{"count5", "count4", "count3", "count2", "countquantity", "counted", "quantity"}

var (
	longNumeralRe = regexp.MustCompile(`^\d{10,}$`)
	longIntRe     = regexp.MustCompile(`^\d{8,}$`)
	countColRe    = regexp.MustCompile(`^count\d*$`)
	nonNumericRe  = regexp.MustCompile(`[^0-9.\-]`)
)

// IsValidQuantity reports whether a cell holds a usable count. Scanner
// artifacts sneak into count columns, so long numerals are rejected as
// timestamps or IDs rather than quantities. An explicit "0" is valid.
func IsValidQuantity(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "-", "n/a":
		return false
	}
	if longNumeralRe.MatchString(s) {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	if n > 1000000 || n < -1000000 {
		return false
	}
	if longIntRe.MatchString(s) && n > 10000 {
		return false
	}
	return true
}

// ToNum coerces a vendor-export cell to a number. Currency symbols, thousands
// separators and units are stripped; anything unparsable is 0, never an error.
func ToNum(s string) float64 {
	s = nonNumericRe.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

// resolveQuantity picks the authoritative quantity for a row. It walks
// CountColumns in precedence order and short-circuits on the first valid
// value, so an explicit zero in a higher recount column beats a non-zero
// value below it. When no candidate is usable it falls back to summing every
// column whose normalized header looks like a count column. The second return
// reports whether any usable count value existed at all.
func resolveQuantity(ix tabular.HeaderIndex, row []string) (float64, bool) {
	for _, name := range CountColumns {
		col, ok := ix[name]
		if !ok || col >= len(row) {
			continue
		}
		if v := row[col]; IsValidQuantity(v) {
			return ToNum(v), true
		}
	}

	// Fallback: sum anything that looks like a count column.
	sum := 0.0
	usable := false
	for key, col := range ix {
		if !countColRe.MatchString(key) || col >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[col]); v != "" {
			sum += ToNum(v)
			usable = true
		}
	}
	return sum, usable
}
