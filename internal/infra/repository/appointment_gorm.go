package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

var _ gateway.AppointmentStore = (*AppointmentGormRepository)(nil)

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *AppointmentGormRepository) List(ctx context.Context) ([]dto.AppointmentView, error) {
	var rows []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("appointment_date ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, translate("list appointments", err)
	}

	out := make([]dto.AppointmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, gateway.AppointmentView(row, row.Customer))
	}
	return out, nil
}

func (r *AppointmentGormRepository) view(ctx context.Context, row models.Appointment) (dto.AppointmentView, error) {
	c, err := findCustomer(ctx, r.db, row.CustomerID)
	if err != nil {
		return dto.AppointmentView{}, err
	}
	return gateway.AppointmentView(row, c), nil
}

// --------------------------------------------------
// Write
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, in dto.AppointmentInput) (dto.AppointmentView, error) {
	ap := in.Model()
	if err := validators.NewAppointment(ap); err != nil {
		return dto.AppointmentView{}, err
	}
	if err := requireCustomer(ctx, r.db, ap.CustomerID); err != nil {
		return dto.AppointmentView{}, err
	}

	if err := r.db.WithContext(ctx).Create(&ap).Error; err != nil {
		return dto.AppointmentView{}, translate("create appointment", err)
	}
	return r.view(ctx, ap)
}

func (r *AppointmentGormRepository) Update(ctx context.Context, id uint, patch dto.AppointmentPatch) (dto.AppointmentView, error) {
	ap, err := first[models.Appointment](ctx, r.db, "appointment", id)
	if err != nil {
		return dto.AppointmentView{}, err
	}

	before := ap
	patch.Apply(&ap)
	if err := validators.AppointmentChange(before, ap); err != nil {
		return dto.AppointmentView{}, err
	}
	if ap.CustomerID != before.CustomerID {
		if err := requireCustomer(ctx, r.db, ap.CustomerID); err != nil {
			return dto.AppointmentView{}, err
		}
	}

	if err := updateColumns(ctx, r.db, "update appointment", &ap, patch.Columns()); err != nil {
		return dto.AppointmentView{}, err
	}
	return r.view(ctx, ap)
}

// Delete refuses to leave repair orders pointing at a missing appointment.
func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	if _, err := first[models.Appointment](ctx, r.db, "appointment", id); err != nil {
		return err
	}
	if err := refuseIfReferenced(ctx, r.db, &models.RepairOrder{}, "appointment_id",
		"la cita tiene órdenes de reparación asociadas", "appointment_id = ?", id); err != nil {
		return err
	}
	return deleteByID[models.Appointment](ctx, r.db, "appointment", id)
}
