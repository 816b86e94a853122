package models

import "time"

// InventoryItem holds on-hand stock. The low-stock flag is computed on read.
type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150;not null" json:"name"`
	SKU         string  `gorm:"column:sku;size:50;uniqueIndex;not null" json:"sku"`
	Category    string  `gorm:"size:30;not null" json:"category"`
	Quantity    int     `gorm:"not null;default:0" json:"quantity"`
	MinQuantity int     `gorm:"not null;default:1" json:"min_quantity"`
	UnitPrice   float64 `gorm:"not null;default:0" json:"unit_price"`
	Supplier    string  `gorm:"size:150" json:"supplier"`
	Description string  `gorm:"type:text" json:"description"`

	LastRestocked *time.Time `json:"last_restocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "inventory"
}
