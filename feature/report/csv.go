package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"stocktake-manager/feature/stocktake/variance"
)

var varianceHeader = []string{
	"Item Code", "Item Name", "Book", "Counted", "Variance", "Unit Price", "Variance Value", "Bin Locations", "Missing",
}

// RenderVarianceCSV renders variance rows as a flat CSV document, one line
// per item code, bins joined with "; ".
func RenderVarianceCSV(rows []variance.Row) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(varianceHeader)
	for _, row := range rows {
		w.Write([]string{
			row.ItemCode,
			row.ItemName,
			num(row.Book),
			num(row.Counted),
			num(row.Variance),
			num(row.UnitPrice),
			num(row.VarianceValue),
			strings.Join(row.BinLocations, "; "),
			flag(row.Missing),
		})
	}
	w.Flush()
	return buf.Bytes()
}

var binHeader = []string{"Bin Location", "Item Code", "Item Name", "Counted", "Variance"}

// RenderBinCSV renders variance rows grouped by bin location, one line per
// (bin, item) pair, for walking the warehouse during a recount. Rows with no
// recorded bin come last under an empty bin column.
func RenderBinCSV(rows []variance.Row) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write(binHeader)
	var unbinned []variance.Row
	for _, row := range rows {
		if len(row.BinLocations) == 0 {
			unbinned = append(unbinned, row)
			continue
		}
		for _, bin := range row.BinLocations {
			w.Write([]string{bin, row.ItemCode, row.ItemName, num(row.Counted), num(row.Variance)})
		}
	}
	for _, row := range unbinned {
		w.Write([]string{"", row.ItemCode, row.ItemName, num(row.Counted), num(row.Variance)})
	}
	w.Flush()
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(v bool) string {
	if v {
		return "yes"
	}
	return ""
}
