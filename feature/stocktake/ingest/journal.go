package ingest

import (
	"strings"

	"stocktake-manager/core/tabular"
)

// ParseJournal turns a book/ledger export blob into journal records. It runs
// the same delimiter-detection and tokenization pipeline as ParseCounts, with
// two journal-specific quirks: some vendor exports double-quote every cell,
// so surrounding quotes are stripped per field, and a row survives only when
// it has a barcode or a non-zero book quantity.
func ParseJournal(text string) []JournalRecord {
	entries := []JournalRecord{}

	text = strings.TrimSpace(text)
	if text == "" {
		return entries
	}

	delim := tabular.DetectDelimiter(text)
	lines := splitLines(text)

	ix := tabular.NewHeaderIndex(cleanRow(tabular.SplitLine(lines[0], delim)))

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := cleanRow(tabular.SplitLine(line, delim))

		barcode := pickField(ix, row, fieldBarcode)
		book := ToNum(pickField(ix, row, fieldOnHand))

		if barcode == "" && book == 0 {
			continue
		}

		entries = append(entries, JournalRecord{
			ItemCode:  barcode,
			Book:      book,
			CostPrice: ToNum(pickField(ix, row, fieldCostPrice)),
			ItemName:  pickField(ix, row, fieldItemName),
		})
	}

	if len(entries) == 0 {
		entries = parseJournalHeaderless(lines, delim)
	}
	return entries
}

// parseJournalHeaderless parses journal blobs with no recognizable header:
// token 0 is the code, token 1 the book quantity, and the cost price sits at
// token 2 or 3 depending on how wide the row is; whatever is left joins into
// the item name.
func parseJournalHeaderless(lines []string, delim rune) []JournalRecord {
	entries := []JournalRecord{}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens := tabular.StripLeadingEmpty(tabular.SplitLine(line, delim))
		if len(tokens) == 0 {
			continue
		}

		rec := JournalRecord{ItemCode: strings.TrimSpace(tokens[0])}
		if len(tokens) > 1 {
			rec.Book = ToNum(tokens[1])
		}
		switch {
		case len(tokens) >= 4:
			rec.CostPrice = ToNum(tokens[3])
			rest := append([]string{tokens[2]}, tokens[4:]...)
			rec.ItemName = strings.TrimSpace(strings.Join(rest, " "))
		case len(tokens) == 3:
			rec.CostPrice = ToNum(tokens[2])
		}

		if rec.ItemCode == "" && rec.Book == 0 {
			continue
		}
		entries = append(entries, rec)
	}
	return entries
}

// cleanRow trims every field and strips one layer of surrounding quotes,
// for exports that quote each cell individually.
func cleanRow(row []string) []string {
	out := make([]string, len(row))
	for i, f := range row {
		f = strings.TrimSpace(f)
		if len(f) >= 2 && f[0] == '"' && f[len(f)-1] == '"' {
			f = strings.TrimSpace(f[1 : len(f)-1])
		}
		out[i] = f
	}
	return out
}
