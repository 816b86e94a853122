package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

type CompleteAppointment struct {
	transition
}

func NewCompleteAppointment(store Store) *CompleteAppointment {
	return &CompleteAppointment{
		transition: transition{
			store:  store,
			target: domain.StatusCompleted,
			action: "appointment_completed",
		},
	}
}

func (uc *CompleteAppointment) Execute(ctx context.Context, appointmentID uint) (dto.AppointmentView, error) {
	return uc.execute(ctx, appointmentID)
}
