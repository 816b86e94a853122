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

type AppointmentStore struct {
	db *DB
}

var _ gateway.AppointmentStore = (*AppointmentStore)(nil)

func (s *AppointmentStore) List(_ context.Context) ([]dto.AppointmentView, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	rows := append([]models.Appointment(nil), s.db.data.Appointments...)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].AppointmentDate.Equal(rows[j].AppointmentDate) {
			return rows[i].AppointmentDate.Before(rows[j].AppointmentDate)
		}
		return rows[i].ID < rows[j].ID
	})

	out := make([]dto.AppointmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, gateway.AppointmentView(row, s.db.customer(row.CustomerID)))
	}
	return out, nil
}

func (s *AppointmentStore) Create(_ context.Context, in dto.AppointmentInput) (dto.AppointmentView, error) {
	ap := in.Model()
	if err := validators.NewAppointment(ap); err != nil {
		return dto.AppointmentView{}, err
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if err := s.db.requireCustomer(ap.CustomerID); err != nil {
		return dto.AppointmentView{}, err
	}

	now := s.db.now()
	ap.ID = s.db.nextID(gateway.Appointments)
	ap.CreatedAt, ap.UpdatedAt = now, now
	s.db.data.Appointments = append(s.db.data.Appointments, ap)
	return gateway.AppointmentView(ap, s.db.customer(ap.CustomerID)), nil
}

func (s *AppointmentStore) Update(_ context.Context, id uint, patch dto.AppointmentPatch) (dto.AppointmentView, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	idx := -1
	for i, a := range s.db.data.Appointments {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dto.AppointmentView{}, apperr.NotFound("appointment", id)
	}

	before := s.db.data.Appointments[idx]
	ap := before
	patch.Apply(&ap)
	if err := validators.AppointmentChange(before, ap); err != nil {
		return dto.AppointmentView{}, err
	}
	if ap.CustomerID != before.CustomerID {
		if err := s.db.requireCustomer(ap.CustomerID); err != nil {
			return dto.AppointmentView{}, err
		}
	}

	ap.UpdatedAt = s.db.now()
	s.db.data.Appointments[idx] = ap
	return gateway.AppointmentView(ap, s.db.customer(ap.CustomerID)), nil
}

func (s *AppointmentStore) Delete(_ context.Context, id uint) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	rows := s.db.data.Appointments
	for i, a := range rows {
		if a.ID != id {
			continue
		}
		for _, o := range s.db.data.RepairOrders {
			if o.AppointmentID != nil && *o.AppointmentID == id {
				return apperr.Validation("appointment_id", "la cita tiene órdenes de reparación asociadas")
			}
		}
		s.db.data.Appointments = append(rows[:i:i], rows[i+1:]...)
		return nil
	}
	return apperr.NotFound("appointment", id)
}
