package ingest

import (
	"stocktake-manager/core/tabular"
)

// Canonical field names used by the ingestors. Each maps to an ordered list
// of header synonyms; supporting a new export format is a data change here,
// not a code change in the parsers.
const (
	fieldBarcode       = "barcode"
	fieldItemName      = "itemName"
	fieldCompany       = "company"
	fieldStockTakeCode = "stockTakeCode"
	fieldDate          = "date"
	fieldWarehouse     = "warehouse"
	fieldBinLocation   = "binLocation"
	fieldOnHand        = "onHand"
	fieldCostPrice     = "costPrice"
)

// synonyms is the declarative header-resolution table. Order matters: earlier
// names win when several columns are populated. Matching goes through
// tabular.Normalize, so spacing, case and punctuation variants are free.
var synonyms = map[string][]string{
	fieldBarcode:       {"barcode", "bar code", "item code", "item number", "code", "sku"},
	fieldItemName:      {"product name", "item name", "description", "item", "name", "product"},
	fieldCompany:       {"company"},
	fieldStockTakeCode: {"stock take code", "stocktake code", "take code"},
	fieldDate:          {"date"},
	fieldWarehouse:     {"warehouse", "warehous", "wh"},
	fieldBinLocation:   {"bin location", "binlocation", "bin", "location"},
	fieldOnHand:        {"ax quantity", "book", "on hand", "qty on hand", "qoh", "quantity", "balance"},
	fieldCostPrice: {
		"cost price", "unit price", "unit cost", "cp", "purchase price",
		"standard cost", "average cost", "cost",
	},
}

// pickField resolves a canonical field from a tokenized row.
func pickField(ix tabular.HeaderIndex, row []string, field string) string {
	return ix.Pick(row, synonyms[field]...)
}
