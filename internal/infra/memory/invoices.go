package memory

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
	"github.com/BruksfildServices01/taller-admin/internal/validators"
)

const paymentTerms = 30 * 24 * time.Hour

type InvoiceStore struct {
	db *DB
}

var _ gateway.InvoiceStore = (*InvoiceStore)(nil)

func (s *InvoiceStore) List(_ context.Context) ([]dto.InvoiceView, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]models.Invoice, 0, len(s.db.data.Invoices))
	for _, inv := range s.db.data.Invoices {
		rows = append(rows, cloneInvoice(inv))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].IssueDate.Equal(rows[j].IssueDate) {
			return rows[i].IssueDate.After(rows[j].IssueDate)
		}
		return rows[i].ID > rows[j].ID
	})

	out := make([]dto.InvoiceView, 0, len(rows))
	for _, row := range rows {
		v, err := gateway.InvoiceView(s.db.engine, row, s.db.customer(row.CustomerID))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *InvoiceStore) Create(_ context.Context, in dto.InvoiceInput) (dto.InvoiceView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	inv := in.Model()
	now := s.db.now()
	if inv.IssueDate.IsZero() {
		inv.IssueDate = now
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.Add(paymentTerms)
	}
	if inv.InvoiceNumber == "" {
		inv.InvoiceNumber = invoice.NextNumber(s.db.prefix, inv.IssueDate.Year(), s.numbers())
	}

	if err := validators.NewInvoice(inv); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := s.checkReferences(inv, nil); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := s.assertNumberFree(inv.InvoiceNumber, 0); err != nil {
		return dto.InvoiceView{}, err
	}

	inv.ID = s.db.nextID(gateway.Invoices)
	inv.CreatedAt, inv.UpdatedAt = now, now
	s.db.data.Invoices = append(s.db.data.Invoices, cloneInvoice(inv))
	return gateway.InvoiceView(s.db.engine, inv, s.db.customer(inv.CustomerID))
}

func (s *InvoiceStore) Update(_ context.Context, id uint, patch dto.InvoicePatch) (dto.InvoiceView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return dto.InvoiceView{}, apperr.NotFound("invoice", id)
	}

	before := cloneInvoice(s.db.data.Invoices[idx])
	inv := cloneInvoice(before)
	patch.Apply(&inv)
	if err := validators.InvoiceChange(before, inv); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := s.checkReferences(inv, &before); err != nil {
		return dto.InvoiceView{}, err
	}
	if err := s.assertNumberFree(inv.InvoiceNumber, id); err != nil {
		return dto.InvoiceView{}, err
	}

	inv.UpdatedAt = s.db.now()
	s.db.data.Invoices[idx] = cloneInvoice(inv)
	return gateway.InvoiceView(s.db.engine, inv, s.db.customer(inv.CustomerID))
}

func (s *InvoiceStore) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return apperr.NotFound("invoice", id)
	}
	rows := s.db.data.Invoices
	s.db.data.Invoices = append(rows[:idx:idx], rows[idx+1:]...)
	return nil
}

func (s *InvoiceStore) index(id uint) int {
	for i, inv := range s.db.data.Invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

func (s *InvoiceStore) numbers() []string {
	out := make([]string, 0, len(s.db.data.Invoices))
	for _, inv := range s.db.data.Invoices {
		out = append(out, inv.InvoiceNumber)
	}
	return out
}

func (s *InvoiceStore) assertNumberFree(number string, selfID uint) error {
	for _, inv := range s.db.data.Invoices {
		if inv.InvoiceNumber == number && inv.ID != selfID {
			return apperr.Conflict("invoice_number", number)
		}
	}
	return nil
}

func (s *InvoiceStore) checkReferences(inv models.Invoice, before *models.Invoice) error {
	if before == nil || before.CustomerID != inv.CustomerID {
		if err := s.db.requireCustomer(inv.CustomerID); err != nil {
			return err
		}
	}
	if inv.RepairOrderID == nil {
		return nil
	}
	if before != nil && before.RepairOrderID != nil && *before.RepairOrderID == *inv.RepairOrderID {
		return nil
	}
	for _, o := range s.db.data.RepairOrders {
		if o.ID == *inv.RepairOrderID {
			return nil
		}
	}
	return apperr.Validation("repair_order_id", "la orden de reparación no existe")
}
