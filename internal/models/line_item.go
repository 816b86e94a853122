package models

// LineItem is owned by a repair order or an invoice and is persisted as
// part of its parent's JSON-encoded items column.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}
