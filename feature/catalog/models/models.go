package models

// StockItem is one row of the stock catalog master data. Codes are stored
// upper-cased so lookups from the variance engine match without folding in
// SQL.
type StockItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Code      string  `gorm:"size:64;uniqueIndex" json:"code"`
	Name      string  `gorm:"size:255" json:"name"`
	QtyOnHand float64 `gorm:"column:qty_on_hand" json:"qtyOnHand"`
	UnitPrice float64 `gorm:"column:unit_price" json:"unitPrice"`
}

// TableName pins the table name regardless of GORM's pluralization settings.
func (StockItem) TableName() string {
	return "stock_items"
}
