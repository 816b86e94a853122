package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

// Store is the part of the appointment collection the lifecycle actions
// need. UpdateAs records the change under the given audit action.
type Store interface {
	UpdateAs(ctx context.Context, id uint, patch dto.AppointmentPatch, action string) (dto.AppointmentView, error)
}

type transition struct {
	store  Store
	target domain.Status
	action string
}

func (t transition) execute(ctx context.Context, appointmentID uint) (dto.AppointmentView, error) {
	status := string(t.target)
	return t.store.UpdateAs(ctx, appointmentID, dto.AppointmentPatch{Status: &status}, t.action)
}
