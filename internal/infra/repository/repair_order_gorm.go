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

type RepairOrderGormRepository struct {
	db *gorm.DB
}

func NewRepairOrderGormRepository(db *gorm.DB) *RepairOrderGormRepository {
	return &RepairOrderGormRepository{db: db}
}

var _ gateway.RepairOrderStore = (*RepairOrderGormRepository)(nil)

func (r *RepairOrderGormRepository) List(ctx context.Context) ([]dto.RepairOrderView, error) {
	var rows []models.RepairOrder
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, translate("list repair orders", err)
	}

	out := make([]dto.RepairOrderView, 0, len(rows))
	for _, row := range rows {
		v, err := gateway.RepairOrderView(row, row.Customer)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *RepairOrderGormRepository) Create(ctx context.Context, in dto.RepairOrderInput) (dto.RepairOrderView, error) {
	o := in.Model()
	if err := validators.NewRepairOrder(o); err != nil {
		return dto.RepairOrderView{}, err
	}
	if err := r.checkReferences(ctx, o, nil); err != nil {
		return dto.RepairOrderView{}, err
	}

	if err := r.db.WithContext(ctx).Create(&o).Error; err != nil {
		return dto.RepairOrderView{}, translate("create repair order", err)
	}
	return r.view(ctx, o)
}

func (r *RepairOrderGormRepository) Update(ctx context.Context, id uint, patch dto.RepairOrderPatch) (dto.RepairOrderView, error) {
	o, err := first[models.RepairOrder](ctx, r.db, "repair order", id)
	if err != nil {
		return dto.RepairOrderView{}, err
	}

	before := o
	patch.Apply(&o)
	if err := validators.RepairOrderChange(before, o); err != nil {
		return dto.RepairOrderView{}, err
	}
	if err := r.checkReferences(ctx, o, &before); err != nil {
		return dto.RepairOrderView{}, err
	}

	if err := updateColumns(ctx, r.db, "update repair order", &o, patch.Columns()); err != nil {
		return dto.RepairOrderView{}, err
	}
	return r.view(ctx, o)
}

func (r *RepairOrderGormRepository) Delete(ctx context.Context, id uint) error {
	if _, err := first[models.RepairOrder](ctx, r.db, "repair order", id); err != nil {
		return err
	}
	if err := refuseIfReferenced(ctx, r.db, &models.Invoice{}, "repair_order_id",
		"la orden de reparación tiene facturas asociadas", "repair_order_id = ?", id); err != nil {
		return err
	}
	return deleteByID[models.RepairOrder](ctx, r.db, "repair order", id)
}

// checkReferences resolves the customer and the optional appointment. On
// update only the references that changed are checked.
func (r *RepairOrderGormRepository) checkReferences(ctx context.Context, o models.RepairOrder, before *models.RepairOrder) error {
	if before == nil || before.CustomerID != o.CustomerID {
		if err := requireCustomer(ctx, r.db, o.CustomerID); err != nil {
			return err
		}
	}

	if o.AppointmentID == nil {
		return nil
	}
	if before != nil && before.AppointmentID != nil && *before.AppointmentID == *o.AppointmentID {
		return nil
	}
	n, err := count(ctx, r.db, &models.Appointment{}, "id = ?", *o.AppointmentID)
	if err != nil {
		return translate("check appointment", err)
	}
	if n == 0 {
		return apperr.Validation("appointment_id", "la cita no existe")
	}
	return nil
}

func (r *RepairOrderGormRepository) view(ctx context.Context, o models.RepairOrder) (dto.RepairOrderView, error) {
	c, err := findCustomer(ctx, r.db, o.CustomerID)
	if err != nil {
		return dto.RepairOrderView{}, err
	}
	return gateway.RepairOrderView(o, c)
}
