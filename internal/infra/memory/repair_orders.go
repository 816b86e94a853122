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

type RepairOrderStore struct {
	db *DB
}

var _ gateway.RepairOrderStore = (*RepairOrderStore)(nil)

func (s *RepairOrderStore) List(_ context.Context) ([]dto.RepairOrderView, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := make([]models.RepairOrder, 0, len(s.db.data.RepairOrders))
	for _, o := range s.db.data.RepairOrders {
		rows = append(rows, cloneRepairOrder(o))
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})

	out := make([]dto.RepairOrderView, 0, len(rows))
	for _, row := range rows {
		v, err := gateway.RepairOrderView(row, s.db.customer(row.CustomerID))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (s *RepairOrderStore) Create(_ context.Context, in dto.RepairOrderInput) (dto.RepairOrderView, error) {
	o := in.Model()
	if err := validators.NewRepairOrder(o); err != nil {
		return dto.RepairOrderView{}, err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.checkReferences(o, nil); err != nil {
		return dto.RepairOrderView{}, err
	}

	now := s.db.now()
	o.ID = s.db.nextID(gateway.RepairOrders)
	o.CreatedAt, o.UpdatedAt = now, now
	s.db.data.RepairOrders = append(s.db.data.RepairOrders, cloneRepairOrder(o))
	return gateway.RepairOrderView(o, s.db.customer(o.CustomerID))
}

func (s *RepairOrderStore) Update(_ context.Context, id uint, patch dto.RepairOrderPatch) (dto.RepairOrderView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return dto.RepairOrderView{}, apperr.NotFound("repair order", id)
	}

	before := cloneRepairOrder(s.db.data.RepairOrders[idx])
	o := cloneRepairOrder(before)
	patch.Apply(&o)
	if err := validators.RepairOrderChange(before, o); err != nil {
		return dto.RepairOrderView{}, err
	}
	if err := s.checkReferences(o, &before); err != nil {
		return dto.RepairOrderView{}, err
	}

	o.UpdatedAt = s.db.now()
	s.db.data.RepairOrders[idx] = cloneRepairOrder(o)
	return gateway.RepairOrderView(o, s.db.customer(o.CustomerID))
}

func (s *RepairOrderStore) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return apperr.NotFound("repair order", id)
	}
	for _, inv := range s.db.data.Invoices {
		if inv.RepairOrderID != nil && *inv.RepairOrderID == id {
			return apperr.Validation("repair_order_id", "la orden de reparación tiene facturas asociadas")
		}
	}
	rows := s.db.data.RepairOrders
	s.db.data.RepairOrders = append(rows[:idx:idx], rows[idx+1:]...)
	return nil
}

func (s *RepairOrderStore) index(id uint) int {
	for i, o := range s.db.data.RepairOrders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *RepairOrderStore) checkReferences(o models.RepairOrder, before *models.RepairOrder) error {
	if before == nil || before.CustomerID != o.CustomerID {
		if err := s.db.requireCustomer(o.CustomerID); err != nil {
			return err
		}
	}
	if o.AppointmentID == nil {
		return nil
	}
	if before != nil && before.AppointmentID != nil && *before.AppointmentID == *o.AppointmentID {
		return nil
	}
	for _, a := range s.db.data.Appointments {
		if a.ID == *o.AppointmentID {
			return nil
		}
	}
	return apperr.Validation("appointment_id", "la cita no existe")
}
