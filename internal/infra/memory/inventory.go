package memory

import (
	"context"
	"sort"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

type InventoryStore struct {
	db *DB
}

var _ gateway.InventoryStore = (*InventoryStore)(nil)

func (s *InventoryStore) List(_ context.Context) ([]dto.InventoryItemView, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]models.InventoryItem, 0, len(s.db.data.Inventory))
	for _, it := range s.db.data.Inventory {
		rows = append(rows, cloneInventoryItem(it))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Name != rows[j].Name {
			return rows[i].Name < rows[j].Name
		}
		return rows[i].ID < rows[j].ID
	})

	out := make([]dto.InventoryItemView, 0, len(rows))
	for _, row := range rows {
		out = append(out, gateway.InventoryItemView(row))
	}
	return out, nil
}

func (s *InventoryStore) Create(_ context.Context, in dto.InventoryItemInput) (dto.InventoryItemView, error) {
	item := in.Model()
	if err := validators.InventoryItem(item); err != nil {
		return dto.InventoryItemView{}, err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.assertSKUFree(item.SKU, 0); err != nil {
		return dto.InventoryItemView{}, err
	}

	now := s.db.now()
	item.ID = s.db.nextID(gateway.Inventory)
	item.CreatedAt, item.UpdatedAt = now, now
	s.db.data.Inventory = append(s.db.data.Inventory, cloneInventoryItem(item))
	return gateway.InventoryItemView(item), nil
}

func (s *InventoryStore) Update(_ context.Context, id uint, patch dto.InventoryItemPatch) (dto.InventoryItemView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return dto.InventoryItemView{}, apperr.NotFound("inventory item", id)
	}

	item := cloneInventoryItem(s.db.data.Inventory[idx])
	patch.Apply(&item)
	if err := validators.InventoryItem(item); err != nil {
		return dto.InventoryItemView{}, err
	}
	if err := s.assertSKUFree(item.SKU, id); err != nil {
		return dto.InventoryItemView{}, err
	}

	item.UpdatedAt = s.db.now()
	s.db.data.Inventory[idx] = cloneInventoryItem(item)
	return gateway.InventoryItemView(item), nil
}

func (s *InventoryStore) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return apperr.NotFound("inventory item", id)
	}
	rows := s.db.data.Inventory
	s.db.data.Inventory = append(rows[:idx:idx], rows[idx+1:]...)
	return nil
}

func (s *InventoryStore) index(id uint) int {
	for i, it := range s.db.data.Inventory {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *InventoryStore) assertSKUFree(sku string, selfID uint) error {
	for _, it := range s.db.data.Inventory {
		if it.SKU == sku && it.ID != selfID {
			return apperr.Conflict("sku", sku)
		}
	}
	return nil
}
