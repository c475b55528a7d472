package variance

import (
	"strings"

	"stocktake-manager/feature/stocktake/ingest"
)

// JournalMaps folds journal records into the per-code inputs the engine
// expects: book quantities summed per item code, the first non-zero cost
// price per code, and the first non-empty item name per code. Codes are
// upper-cased to match the engine's grouping key.
func JournalMaps(entries []ingest.JournalRecord) (book, cost map[string]float64, names map[string]string) {
	book = make(map[string]float64)
	cost = make(map[string]float64)
	names = make(map[string]string)

	for _, e := range entries {
		key := strings.ToUpper(strings.TrimSpace(e.ItemCode))
		if key == "" {
			continue
		}
		book[key] += e.Book
		if _, ok := cost[key]; !ok && e.CostPrice != 0 {
			cost[key] = e.CostPrice
		}
		if _, ok := names[key]; !ok && e.ItemName != "" {
			names[key] = e.ItemName
		}
	}
	return book, cost, names
}
