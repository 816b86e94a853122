package repairorder

import "github.com/BruksfildServices01/taller-admin/internal/apperr"

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active orders are the ones still being worked on in the shop.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusInProgress
}

func InitialStatus() Status {
	return StatusPending
}

func CanTransition(from, to Status) error {
	if !to.Valid() {
		return apperr.Validation("status", "estado de orden desconocido")
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return apperr.Validation("status", "la orden ya está "+string(from))
	}
	return nil
}
