package variance

import "stocktake-manager/feature/stocktake/ingest"

// Row is the reconciliation output for a single item code: counted versus
// book quantity, priced at unit cost, with every bin location the item was
// seen in.
type Row struct {
	ItemCode string `json:"itemCode"`
	ItemName string `json:"itemName,omitempty"`

	// Book is the on-hand quantity of record, from the journal or catalog.
	Book float64 `json:"book"`

	// Counted is the authoritative counted quantity for the group.
	Counted float64 `json:"counted"`

	// Variance is Counted minus Book.
	Variance float64 `json:"variance"`

	// UnitPrice is the cost price used to value the variance.
	UnitPrice float64 `json:"unitPrice"`

	// VarianceValue is Variance priced at UnitPrice.
	VarianceValue float64 `json:"varianceValue"`

	// BinLocations lists every bin the item code was counted in,
	// sorted and de-duplicated.
	BinLocations []string `json:"binLocations"`

	// Missing marks codes absent from both the journal and the catalog.
	Missing bool `json:"missing,omitempty"`
}

// Catalog is the injected master-data lookup. Implementations return false
// when the code is unknown; the engine never assumes a catalog is present.
type Catalog interface {
	// BookQuantity returns the catalog on-hand quantity for a code.
	BookQuantity(code string) (float64, bool)
	// UnitPrice returns the catalog cost price for a code.
	UnitPrice(code string) (float64, bool)
	// Name returns the catalog item name for a code.
	Name(code string) (string, bool)
}

// Inputs bundles everything a variance computation needs. Book and Cost are
// built by the caller from journal records (book summed per code, first
// non-zero cost per code); Names and Catalog supply master data. Catalog may
// be nil.
type Inputs struct {
	Entries []ingest.CountRecord
	Book    map[string]float64
	Cost    map[string]float64
	Names   map[string]string
	Catalog Catalog
}
