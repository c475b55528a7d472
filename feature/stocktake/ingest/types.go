package ingest

// FileMeta carries scalar fields discovered incidentally while scanning count
// rows. The first non-empty value found for each field is frozen and never
// overwritten by later rows.
type FileMeta struct {
	Company       string `json:"company,omitempty"`
	StockTakeCode string `json:"stockTakeCode,omitempty"`
	Date          string `json:"date,omitempty"`
	Warehouse     string `json:"warehouse,omitempty"`
}

// RawFields preserves the verbatim (trimmed) cell values of a count row.
// The variance engine re-reads the recount columns from here, so losing a
// value on the way through is a data-integrity bug, not a cosmetic one.
type RawFields struct {
	Barcode       string `json:"barcode,omitempty"`
	ItemName      string `json:"itemName,omitempty"`
	Company       string `json:"company,omitempty"`
	StockTakeCode string `json:"stockTakeCode,omitempty"`
	Date          string `json:"date,omitempty"`
	Warehouse     string `json:"warehouse,omitempty"`
	BinLocation   string `json:"binLocation,omitempty"`
	Count2        string `json:"count2,omitempty"`
	Count3        string `json:"count3,omitempty"`
	Count4        string `json:"count4,omitempty"`
	Count5        string `json:"count5,omitempty"`
	Quantity      string `json:"quantity,omitempty"`
}

// CountRecord is one physically counted line. ItemCode is trimmed and
// non-empty; Counted holds the quantity resolved by recount precedence.
type CountRecord struct {
	ItemCode string    `json:"itemCode"`
	Counted  float64   `json:"counted"`
	ItemName string    `json:"itemName,omitempty"`
	Raw      RawFields `json:"raw"`
}

// CountFile is the result of parsing a count blob.
type CountFile struct {
	Meta    FileMeta      `json:"meta"`
	Entries []CountRecord `json:"entries"`
}

// JournalRecord is one book/ledger line. Book and CostPrice are never
// absent; unparsable values come through as 0.
type JournalRecord struct {
	ItemCode  string  `json:"itemCode"`
	Book      float64 `json:"book"`
	CostPrice float64 `json:"costPrice"`
	ItemName  string  `json:"itemName,omitempty"`
}
