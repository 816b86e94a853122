package appointment

import "github.com/BruksfildServices01/taller-admin/internal/apperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses never revert.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active appointments still occupy the workshop agenda.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

func InitialStatus() Status {
	return StatusPending
}

// CanCreate accepts only the statuses an appointment may start in.
func CanCreate(s Status) error {
	if s != StatusPending && s != StatusConfirmed {
		return apperr.Validation("status", "una cita nueva debe estar pendiente o confirmada")
	}
	return nil
}

// CanTransition rejects unknown statuses and any change out of a terminal one.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return apperr.Validation("status", "estado de cita desconocido")
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return apperr.Validation("status", "la cita ya está "+string(from))
	}
	return nil
}
