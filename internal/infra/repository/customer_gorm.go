package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

type CustomerGormRepository struct {
	db     *gorm.DB
	engine derive.Engine
}

func NewCustomerGormRepository(db *gorm.DB, engine derive.Engine) *CustomerGormRepository {
	return &CustomerGormRepository{db: db, engine: engine}
}

var _ gateway.CustomerStore = (*CustomerGormRepository)(nil)

func (r *CustomerGormRepository) List(ctx context.Context) ([]dto.CustomerView, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&customers).Error; err != nil {
		return nil, translate("list customers", err)
	}

	appointments, invoices, err := r.activity(ctx, nil)
	if err != nil {
		return nil, err
	}

	return gateway.CustomerViews(customers, appointments, invoices), nil
}

func (r *CustomerGormRepository) Create(ctx context.Context, in dto.CustomerInput) (dto.CustomerView, error) {
	c := in.Model()
	if err := validators.Customer(c); err != nil {
		return dto.CustomerView{}, err
	}

	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return dto.CustomerView{}, translate("create customer", err)
	}

	return gateway.CustomerView(c, nil, nil), nil
}

func (r *CustomerGormRepository) Update(ctx context.Context, id uint, patch dto.CustomerPatch) (dto.CustomerView, error) {
	c, err := first[models.Customer](ctx, r.db, "customer", id)
	if err != nil {
		return dto.CustomerView{}, err
	}

	patch.Apply(&c)
	if err := validators.Customer(c); err != nil {
		return dto.CustomerView{}, err
	}

	if err := updateColumns(ctx, r.db, "update customer", &c, patch.Columns()); err != nil {
		return dto.CustomerView{}, err
	}

	appointments, invoices, err := r.activity(ctx, &id)
	if err != nil {
		return dto.CustomerView{}, err
	}
	return gateway.CustomerView(c, appointments, invoices), nil
}

// Delete refuses to orphan appointments, orders or invoices.
func (r *CustomerGormRepository) Delete(ctx context.Context, id uint) error {
	if _, err := first[models.Customer](ctx, r.db, "customer", id); err != nil {
		return err
	}

	for _, model := range []any{&models.Appointment{}, &models.RepairOrder{}, &models.Invoice{}} {
		if err := refuseIfReferenced(ctx, r.db, model, "customer_id",
			"el cliente tiene registros asociados", "customer_id = ?", id); err != nil {
			return err
		}
	}

	return deleteByID[models.Customer](ctx, r.db, "customer", id)
}

// activity loads the appointments and invoices that feed customer stats,
// optionally for a single customer.
func (r *CustomerGormRepository) activity(ctx context.Context, customerID *uint) ([]dto.AppointmentView, []dto.InvoiceView, error) {
	aq := r.db.WithContext(ctx).Model(&models.Appointment{}).Select("id", "customer_id")
	iq := r.db.WithContext(ctx).Model(&models.Invoice{})
	if customerID != nil {
		aq = aq.Where("customer_id = ?", *customerID)
		iq = iq.Where("customer_id = ?", *customerID)
	}

	var apRows []models.Appointment
	if err := aq.Find(&apRows).Error; err != nil {
		return nil, nil, translate("list customer appointments", err)
	}
	var invRows []models.Invoice
	if err := iq.Find(&invRows).Error; err != nil {
		return nil, nil, translate("list customer invoices", err)
	}

	appointments := make([]dto.AppointmentView, 0, len(apRows))
	for _, a := range apRows {
		appointments = append(appointments, dto.AppointmentView{Appointment: a})
	}
	invoices := make([]dto.InvoiceView, 0, len(invRows))
	for _, row := range invRows {
		v, err := gateway.InvoiceView(r.engine, row, nil)
		if err != nil {
			return nil, nil, err
		}
		invoices = append(invoices, v)
	}
	return appointments, invoices, nil
}
