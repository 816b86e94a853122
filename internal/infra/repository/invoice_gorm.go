package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

// PaymentTerms is the default gap between issue and due date.
const PaymentTerms = 30 * 24 * time.Hour

type InvoiceGormRepository struct {
	db     *gorm.DB
	engine derive.Engine
	prefix string
	now    func() time.Time
}

func NewInvoiceGormRepository(db *gorm.DB, engine derive.Engine, prefix string) *InvoiceGormRepository {
	return &InvoiceGormRepository{
		db:     db,
		engine: engine,
		prefix: prefix,
		now:    time.Now,
	}
}

var _ gateway.InvoiceStore = (*InvoiceGormRepository)(nil)

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *InvoiceGormRepository) List(ctx context.Context) ([]dto.InvoiceView, error) {
	var rows []models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("issue_date DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, translate("list invoices", err)
	}

	out := make([]dto.InvoiceView, 0, len(rows))
	for _, row := range rows {
		v, err := gateway.InvoiceView(r.engine, row, row.Customer)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (r *InvoiceGormRepository) view(ctx context.Context, inv models.Invoice) (dto.InvoiceView, error) {
	c, err := findCustomer(ctx, r.db, inv.CustomerID)
	if err != nil {
		return dto.InvoiceView{}, err
	}
	return gateway.InvoiceView(r.engine, inv, c)
}

// --------------------------------------------------
// Write
// --------------------------------------------------

// Create fills a missing issue date with today, a missing due date with the
// payment terms and a missing number with the next one of the year.
func (r *InvoiceGormRepository) Create(ctx context.Context, in dto.InvoiceInput) (dto.InvoiceView, error) {
	inv := in.Model()
	if inv.IssueDate.IsZero() {
		inv.IssueDate = r.now()
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.Add(PaymentTerms)
	}
	if inv.InvoiceNumber == "" {
		number, err := r.nextNumber(ctx, inv.IssueDate.Year())
		if err != nil {
			return dto.InvoiceView{}, err
		}
		inv.InvoiceNumber = number
	}

	if err := validators.NewInvoice(inv); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := r.checkReferences(ctx, inv, nil); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := r.assertNumberFree(ctx, inv.InvoiceNumber, 0); err != nil {
		return dto.InvoiceView{}, err
	}

	if err := r.db.WithContext(ctx).Create(&inv).Error; err != nil {
		if apperr.IsConflict(translate("", err)) {
			return dto.InvoiceView{}, apperr.Conflict("invoice_number", inv.InvoiceNumber)
		}
		return dto.InvoiceView{}, translate("create invoice", err)
	}
	return r.view(ctx, inv)
}

func (r *InvoiceGormRepository) Update(ctx context.Context, id uint, patch dto.InvoicePatch) (dto.InvoiceView, error) {
	inv, err := first[models.Invoice](ctx, r.db, "invoice", id)
	if err != nil {
		return dto.InvoiceView{}, err
	}

	before := inv
	patch.Apply(&inv)
	if err := validators.InvoiceChange(before, inv); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := r.checkReferences(ctx, inv, &before); err != nil {
		return dto.InvoiceView{}, err
	}
	if inv.InvoiceNumber != before.InvoiceNumber {
		if err := r.assertNumberFree(ctx, inv.InvoiceNumber, inv.ID); err != nil {
			return dto.InvoiceView{}, err
		}
	}

	if err := updateColumns(ctx, r.db, "update invoice", &inv, patch.Columns()); err != nil {
		return dto.InvoiceView{}, err
	}
	return r.view(ctx, inv)
}

func (r *InvoiceGormRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Invoice](ctx, r.db, "invoice", id)
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (r *InvoiceGormRepository) nextNumber(ctx context.Context, year int) (string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("invoice_number LIKE ?", invoice.NumberPattern(r.prefix, year)).
		Pluck("invoice_number", &numbers).Error; err != nil {
		return "", translate("next invoice number", err)
	}
	return invoice.NextNumber(r.prefix, year, numbers), nil
}

func (r *InvoiceGormRepository) assertNumberFree(ctx context.Context, number string, selfID uint) error {
	n, err := count(ctx, r.db, &models.Invoice{}, "invoice_number = ? AND id <> ?", number, selfID)
	if err != nil {
		return translate("check invoice number", err)
	}
	if n > 0 {
		return apperr.Conflict("invoice_number", number)
	}
	return nil
}

func (r *InvoiceGormRepository) checkReferences(ctx context.Context, inv models.Invoice, before *models.Invoice) error {
	if before == nil || before.CustomerID != inv.CustomerID {
		if err := requireCustomer(ctx, r.db, inv.CustomerID); err != nil {
			return err
		}
	}

	if inv.RepairOrderID == nil {
		return nil
	}
	if before != nil && before.RepairOrderID != nil && *before.RepairOrderID == *inv.RepairOrderID {
		return nil
	}
	n, err := count(ctx, r.db, &models.RepairOrder{}, "id = ?", *inv.RepairOrderID)
	if err != nil {
		return translate("check repair order", err)
	}
	if n == 0 {
		return apperr.Validation("repair_order_id", "la orden de reparación no existe")
	}
	return nil
}
