package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

type CancelAppointment struct {
	transition
}

func NewCancelAppointment(store Store) *CancelAppointment {
	return &CancelAppointment{
		transition: transition{
			store:  store,
			target: domain.StatusCancelled,
			action: "appointment_cancelled",
		},
	}
}

func (uc *CancelAppointment) Execute(ctx context.Context, appointmentID uint) (dto.AppointmentView, error) {
	return uc.execute(ctx, appointmentID)
}
