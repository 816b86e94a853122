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

type CustomerStore struct {
	db *DB
}

var _ gateway.CustomerStore = (*CustomerStore)(nil)

func (s *CustomerStore) List(_ context.Context) ([]dto.CustomerView, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := append([]models.Customer(nil), s.db.data.Customers...)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})

	appointments, invoices, err := s.db.activity()
	if err != nil {
		return nil, err
	}
	return gateway.CustomerViews(rows, appointments, invoices), nil
}

func (s *CustomerStore) Create(_ context.Context, in dto.CustomerInput) (dto.CustomerView, error) {
	c := in.Model()
	if err := validators.Customer(c); err != nil {
		return dto.CustomerView{}, err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	now := s.db.now()
	c.ID = s.db.nextID(gateway.Customers)
	c.CreatedAt, c.UpdatedAt = now, now
	s.db.data.Customers = append(s.db.data.Customers, c)
	return gateway.CustomerView(c, nil, nil), nil
}

func (s *CustomerStore) Update(_ context.Context, id uint, patch dto.CustomerPatch) (dto.CustomerView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.db.customerIndex(id)
	if idx < 0 {
		return dto.CustomerView{}, apperr.NotFound("customer", id)
	}

	c := s.db.data.Customers[idx]
	patch.Apply(&c)
	if err := validators.Customer(c); err != nil {
		return dto.CustomerView{}, err
	}
	c.UpdatedAt = s.db.now()
	s.db.data.Customers[idx] = c

	appointments, invoices, err := s.db.activity()
	if err != nil {
		return dto.CustomerView{}, err
	}
	return gateway.CustomerView(c, appointments, invoices), nil
}

func (s *CustomerStore) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.db.customerIndex(id)
	if idx < 0 {
		return apperr.NotFound("customer", id)
	}
	if s.db.customerReferenced(id) {
		return apperr.Validation("customer_id", "el cliente tiene registros asociados")
	}

	s.db.data.Customers = append(s.db.data.Customers[:idx:idx], s.db.data.Customers[idx+1:]...)
	return nil
}

// --------------------------------------------------
// Helpers (callers hold the lock)
// --------------------------------------------------

func (db *DB) customerIndex(id uint) int {
	for i, c := range db.data.Customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (db *DB) requireCustomer(id uint) error {
	if id == 0 {
		return apperr.Validation("customer_id", "el cliente es obligatorio")
	}
	if db.customerIndex(id) < 0 {
		return apperr.Validation("customer_id", "el cliente no existe")
	}
	return nil
}

func (db *DB) customerReferenced(id uint) bool {
	for _, a := range db.data.Appointments {
		if a.CustomerID == id {
			return true
		}
	}
	for _, o := range db.data.RepairOrders {
		if o.CustomerID == id {
			return true
		}
	}
	for _, inv := range db.data.Invoices {
		if inv.CustomerID == id {
			return true
		}
	}
	return false
}

func (db *DB) activity() ([]dto.AppointmentView, []dto.InvoiceView, error) {
	appointments := make([]dto.AppointmentView, 0, len(db.data.Appointments))
	for _, a := range db.data.Appointments {
		appointments = append(appointments, dto.AppointmentView{Appointment: a})
	}
	invoices := make([]dto.InvoiceView, 0, len(db.data.Invoices))
	for _, row := range db.data.Invoices {
		v, err := gateway.InvoiceView(db.engine, cloneInvoice(row), nil)
		if err != nil {
			return nil, nil, err
		}
		invoices = append(invoices, v)
	}
	return appointments, invoices, nil
}
