package ingest

import (
	"strings"

	"stocktake-manager/core/tabular"
)

// ParseCounts turns a raw count-file blob into count records plus file
// metadata. The first line is treated as headers; if header-driven parsing
// yields nothing the whole blob is re-read by the headerless fallback.
// Malformed input never fails, it just produces fewer entries.
func ParseCounts(text string) CountFile {
	out := CountFile{Entries: []CountRecord{}}

	text = strings.TrimSpace(text)
	if text == "" {
		return out
	}

	delim := tabular.DetectDelimiter(text)
	lines := splitLines(text)

	ix := tabular.NewHeaderIndex(tabular.SplitLine(lines[0], delim))

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row := tabular.SplitLine(line, delim)

		barcode := pickField(ix, row, fieldBarcode)
		itemName := pickField(ix, row, fieldItemName)

		// Metadata freezes on first sight, even on rows later skipped.
		setIfEmpty(&out.Meta.Company, pickField(ix, row, fieldCompany))
		setIfEmpty(&out.Meta.StockTakeCode, pickField(ix, row, fieldStockTakeCode))
		setIfEmpty(&out.Meta.Date, pickField(ix, row, fieldDate))
		setIfEmpty(&out.Meta.Warehouse, pickField(ix, row, fieldWarehouse))

		if barcode == "" {
			continue
		}

		qty, usable := resolveQuantity(ix, row)
		if qty == 0 && !usable {
			// No count value anywhere on the row; treat as a non-data line.
			// An explicitly recorded zero count is kept.
			continue
		}

		out.Entries = append(out.Entries, CountRecord{
			ItemCode: barcode,
			Counted:  qty,
			ItemName: itemName,
			Raw: RawFields{
				Barcode:       barcode,
				ItemName:      itemName,
				Company:       pickField(ix, row, fieldCompany),
				StockTakeCode: pickField(ix, row, fieldStockTakeCode),
				Date:          pickField(ix, row, fieldDate),
				Warehouse:     pickField(ix, row, fieldWarehouse),
				BinLocation:   pickField(ix, row, fieldBinLocation),
				Count2:        cell(ix, row, "count2"),
				Count3:        cell(ix, row, "count3"),
				Count4:        cell(ix, row, "count4"),
				Count5:        cell(ix, row, "count5"),
				Quantity:      cell(ix, row, "quantity"),
			},
		})
	}

	if len(out.Entries) == 0 {
		out.Entries = parseCountsHeaderless(lines, delim)
	}
	return out
}

// parseCountsHeaderless handles blobs with no header row at all, such as
// ";;1010100090;2;BRAZING ROD": leading empty tokens are stripped, then
// token 0 is the code, token 1 the quantity, and the rest joins into a name.
func parseCountsHeaderless(lines []string, delim rune) []CountRecord {
	entries := []CountRecord{}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tokens := tabular.StripLeadingEmpty(tabular.SplitLine(line, delim))
		if len(tokens) == 0 {
			continue
		}
		code := strings.TrimSpace(tokens[0])
		if code == "" {
			continue
		}

		qty := 0.0
		rawQty := ""
		if len(tokens) > 1 {
			rawQty = strings.TrimSpace(tokens[1])
			qty = ToNum(rawQty)
		}
		name := ""
		if len(tokens) > 2 {
			name = strings.TrimSpace(strings.Join(tokens[2:], " "))
		}

		entries = append(entries, CountRecord{
			ItemCode: code,
			Counted:  qty,
			ItemName: name,
			Raw: RawFields{
				Barcode:  code,
				ItemName: name,
				Quantity: rawQty,
			},
		})
	}
	return entries
}

// cell returns the trimmed value at a normalized header name, "" when the
// column is absent or the row is short.
func cell(ix tabular.HeaderIndex, row []string, key string) string {
	col, ok := ix[key]
	if !ok || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// splitLines splits on newlines and drops carriage returns from CRLF input.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
