package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

type ConfirmAppointment struct {
	transition
}

func NewConfirmAppointment(store Store) *ConfirmAppointment {
	return &ConfirmAppointment{
		transition: transition{
			store:  store,
			target: domain.StatusConfirmed,
			action: "appointment_confirmed",
		},
	}
}

func (uc *ConfirmAppointment) Execute(ctx context.Context, appointmentID uint) (dto.AppointmentView, error) {
	return uc.execute(ctx, appointmentID)
}
