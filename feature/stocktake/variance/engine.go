package variance

import (
	"sort"
	"strings"

	"stocktake-manager/feature/stocktake/ingest"
)

// groupColumns are the raw recount columns the engine re-reads when choosing
// one authoritative quantity per item group, strongest first.
var groupColumns = []string{"count5", "count4", "count3", "count2", "quantity"}

// Compute reconciles count records against book data and produces one row
// per distinct item code, sorted ascending. It is a pure single-pass batch
// transform: same inputs, same output.
func Compute(in Inputs) []Row {
	groups := make(map[string][]ingest.CountRecord)
	for _, e := range in.Entries {
		key := strings.ToUpper(strings.TrimSpace(e.ItemCode))
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], e)
	}

	rows := make([]Row, 0, len(groups))
	for key, recs := range groups {
		row := Row{
			ItemCode:     key,
			Counted:      groupQuantity(recs),
			BinLocations: collectBins(recs),
		}

		book, hasBook := in.Book[key]
		_, hasName := in.Names[key]
		if !hasBook && in.Catalog != nil {
			if b, ok := in.Catalog.BookQuantity(key); ok {
				book = b
				hasBook = true
			}
		}
		row.Book = book
		row.Missing = !hasBook && !hasName

		row.ItemName = resolveName(in, key, recs)
		row.UnitPrice = resolvePrice(in, key)
		row.Variance = row.Counted - row.Book
		row.VarianceValue = row.Variance * row.UnitPrice

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].ItemCode < rows[j].ItemCode
	})
	return rows
}

// groupQuantity picks the single authoritative counted quantity for a group.
// The winning column is the highest-precedence recount column holding a valid
// value anywhere in the group; the value is taken from the first record (in
// file order) that populates that column. Note this is a pick-one rule, not a
// sum, and it is intentionally order-dependent: the first populated record
// wins, not the most recent scan and not the maximum.
func groupQuantity(recs []ingest.CountRecord) float64 {
	for _, col := range groupColumns {
		valid := false
		for _, r := range recs {
			if ingest.IsValidQuantity(rawColumn(r, col)) {
				valid = true
				break
			}
		}
		if !valid {
			continue
		}
		for _, r := range recs {
			if v := rawColumn(r, col); strings.TrimSpace(v) != "" {
				return ingest.ToNum(v)
			}
		}
	}
	// No recount column populated anywhere; fall back to the resolved
	// counted value of the group's first record.
	return recs[0].Counted
}

func rawColumn(r ingest.CountRecord, col string) string {
	switch col {
	case "count5":
		return r.Raw.Count5
	case "count4":
		return r.Raw.Count4
	case "count3":
		return r.Raw.Count3
	case "count2":
		return r.Raw.Count2
	case "quantity":
		return r.Raw.Quantity
	}
	return ""
}

// collectBins gathers every non-empty bin location across the group into a
// sorted, de-duplicated list.
func collectBins(recs []ingest.CountRecord) []string {
	seen := make(map[string]struct{})
	bins := []string{}
	for _, r := range recs {
		bin := strings.TrimSpace(r.Raw.BinLocation)
		if bin == "" {
			continue
		}
		if _, ok := seen[bin]; ok {
			continue
		}
		seen[bin] = struct{}{}
		bins = append(bins, bin)
	}
	sort.Strings(bins)
	return bins
}

func resolveName(in Inputs, key string, recs []ingest.CountRecord) string {
	if name := in.Names[key]; name != "" {
		return name
	}
	if in.Catalog != nil {
		if name, ok := in.Catalog.Name(key); ok && name != "" {
			return name
		}
	}
	for _, r := range recs {
		if r.ItemName != "" {
			return r.ItemName
		}
	}
	return ""
}

func resolvePrice(in Inputs, key string) float64 {
	if price, ok := in.Cost[key]; ok {
		return price
	}
	if in.Catalog != nil {
		if price, ok := in.Catalog.UnitPrice(key); ok {
			return price
		}
	}
	return 0
}
