package invoice

import "github.com/BruksfildServices01/taller-admin/internal/apperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses close the invoice; an overdue invoice can still be paid.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

func InitialStatus() Status {
	return StatusPending
}

func CanTransition(from, to Status) error {
	if !to.Valid() {
		return apperr.Validation("status", "estado de factura desconocido")
	}
	if from == to {
		return nil
	}
	if from.Terminal() {
		return apperr.Validation("status", "la factura ya está "+string(from))
	}
	return nil
}
