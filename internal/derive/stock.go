package derive

import (
	"sort"

	"github.com/BruksfildServices01/taller-admin/internal/domain/inventory"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// IsLowStock is strict: quantity equal to the minimum is not low stock.
func IsLowStock(item models.InventoryItem) bool {
	return item.Quantity < item.MinQuantity
}

type StockLevel struct {
	ItemID      uint   `json:"item_id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	MinQuantity int    `json:"min_quantity"`
	Band        string `json:"band"`
	IsLowStock  bool   `json:"is_low_stock"`
}

// StockLevels ranks items by on-hand quantity and keeps the first n.
func StockLevels(items []dto.InventoryItemView, n int) []StockLevel {
	ranked := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		ranked = append(ranked, it.InventoryItem)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ID < ranked[j].ID
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]StockLevel, 0, len(ranked))
	for _, it := range ranked {
		out = append(out, StockLevel{
			ItemID:      it.ID,
			Name:        it.Name,
			SKU:         it.SKU,
			Category:    it.Category,
			Quantity:    it.Quantity,
			MinQuantity: it.MinQuantity,
			Band:        inventory.Band(it.Quantity),
			IsLowStock:  IsLowStock(it),
		})
	}
	return out
}
