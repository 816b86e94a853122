package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

var _ gateway.InventoryStore = (*InventoryGormRepository)(nil)

func (r *InventoryGormRepository) List(ctx context.Context) ([]dto.InventoryItemView, error) {
	var rows []models.InventoryItem
	if err := r.db.WithContext(ctx).
		Order("name ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("list inventory", err)
	}

	out := make([]dto.InventoryItemView, 0, len(rows))
	for _, row := range rows {
		out = append(out, gateway.InventoryItemView(row))
	}
	return out, nil
}

func (r *InventoryGormRepository) Create(ctx context.Context, in dto.InventoryItemInput) (dto.InventoryItemView, error) {
	item := in.Model()
	if err := validators.InventoryItem(item); err != nil {
		return dto.InventoryItemView{}, err
	}
	if err := r.assertSKUFree(ctx, item.SKU, 0); err != nil {
		return dto.InventoryItemView{}, err
	}

	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		if apperr.IsConflict(translate("", err)) {
			return dto.InventoryItemView{}, apperr.Conflict("sku", item.SKU)
		}
		return dto.InventoryItemView{}, translate("create inventory item", err)
	}
	return gateway.InventoryItemView(item), nil
}

func (r *InventoryGormRepository) Update(ctx context.Context, id uint, patch dto.InventoryItemPatch) (dto.InventoryItemView, error) {
	item, err := first[models.InventoryItem](ctx, r.db, "inventory item", id)
	if err != nil {
		return dto.InventoryItemView{}, err
	}

	patch.Apply(&item)
	if err := validators.InventoryItem(item); err != nil {
		return dto.InventoryItemView{}, err
	}
	if err := r.assertSKUFree(ctx, item.SKU, item.ID); err != nil {
		return dto.InventoryItemView{}, err
	}

	if err := updateColumns(ctx, r.db, "update inventory item", &item, patch.Columns()); err != nil {
		return dto.InventoryItemView{}, err
	}
	return gateway.InventoryItemView(item), nil
}

func (r *InventoryGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.InventoryItem](ctx, r.db, "inventory item", id)
}

func (r *InventoryGormRepository) assertSKUFree(ctx context.Context, sku string, selfID uint) error {
	n, err := count(ctx, r.db, &models.InventoryItem{}, "sku = ? AND id <> ?", sku, selfID)
	if err != nil {
		return translate("check sku", err)
	}
	if n > 0 {
		return apperr.Conflict("sku", sku)
	}
	return nil
}
