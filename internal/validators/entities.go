// Package validators holds the field and relationship rules every gateway
// implementation applies before writing.
package validators

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/domain/inventory"
	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/domain/repairorder"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// -------- Customer --------

func Customer(c models.Customer) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperr.Validation("name", "el nombre es obligatorio")
	}
	if c.Email != "" && !IsEmail(c.Email) {
		return apperr.Validation("email", "email inválido")
	}
	return nil
}

// -------- Appointment --------

func NewAppointment(a models.Appointment) error {
	if err := appointment.CanCreate(appointment.Status(a.Status)); err != nil {
		return err
	}
	return Appointment(a)
}

func AppointmentChange(before, after models.Appointment) error {
	if err := appointment.CanTransition(appointment.Status(before.Status), appointment.Status(after.Status)); err != nil {
		return err
	}
	return Appointment(after)
}

func Appointment(a models.Appointment) error {
	if a.CustomerID == 0 {
		return apperr.Validation("customer_id", "el cliente es obligatorio")
	}
	if a.AppointmentDate.IsZero() {
		return apperr.Validation("appointment_date", "la fecha es obligatoria")
	}
	if !appointment.Status(a.Status).Valid() {
		return apperr.Validation("status", "estado de cita desconocido")
	}
	if a.EstimatedDuration <= 0 {
		return apperr.Validation("estimated_duration", "la duración debe ser positiva")
	}
	return nil
}

// -------- Inventory --------

func InventoryItem(i models.InventoryItem) error {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return apperr.Validation("name", "el nombre es obligatorio")
	case strings.TrimSpace(i.SKU) == "":
		return apperr.Validation("sku", "el SKU es obligatorio")
	case !inventory.Category(i.Category).Valid():
		return apperr.Validation("category", "categoría desconocida")
	case i.Quantity < 0:
		return apperr.Validation("quantity", "la cantidad no puede ser negativa")
	case i.MinQuantity < 1:
		return apperr.Validation("min_quantity", "el mínimo debe ser al menos 1")
	case i.UnitPrice < 0:
		return apperr.Validation("unit_price", "el precio no puede ser negativo")
	}
	return nil
}

// -------- Repair order --------

func NewRepairOrder(o models.RepairOrder) error {
	return RepairOrder(o)
}

func RepairOrderChange(before, after models.RepairOrder) error {
	if err := repairorder.CanTransition(repairorder.Status(before.Status), repairorder.Status(after.Status)); err != nil {
		return err
	}
	return RepairOrder(after)
}

func RepairOrder(o models.RepairOrder) error {
	if o.CustomerID == 0 {
		return apperr.Validation("customer_id", "el cliente es obligatorio")
	}
	if !repairorder.Status(o.Status).Valid() {
		return apperr.Validation("status", "estado de orden desconocido")
	}
	if o.EstimatedCost < 0 {
		return apperr.Validation("estimated_cost", "el coste estimado no puede ser negativo")
	}
	if o.ActualCost != nil && *o.ActualCost < 0 {
		return apperr.Validation("actual_cost", "el coste real no puede ser negativo")
	}
	if o.StartDate != nil && o.CompletionDate != nil && o.CompletionDate.Before(*o.StartDate) {
		return apperr.Validation("completion_date", "la fecha de finalización es anterior al inicio")
	}
	return LineItems(o.Items)
}

// -------- Invoice --------

func NewInvoice(i models.Invoice) error {
	return Invoice(i)
}

func InvoiceChange(before, after models.Invoice) error {
	if err := invoice.CanTransition(invoice.Status(before.Status), invoice.Status(after.Status)); err != nil {
		return err
	}
	return Invoice(after)
}

func Invoice(i models.Invoice) error {
	if strings.TrimSpace(i.InvoiceNumber) == "" {
		return apperr.Validation("invoice_number", "el número de factura es obligatorio")
	}
	if i.CustomerID == 0 {
		return apperr.Validation("customer_id", "el cliente es obligatorio")
	}
	if i.IssueDate.IsZero() {
		return apperr.Validation("issue_date", "la fecha de emisión es obligatoria")
	}
	if !i.DueDate.IsZero() && i.DueDate.Before(i.IssueDate) {
		return apperr.Validation("due_date", "el vencimiento es anterior a la emisión")
	}
	if !invoice.Status(i.Status).Valid() {
		return apperr.Validation("status", "estado de factura desconocido")
	}
	return LineItems(i.Items)
}

// -------- Line items --------

// LineItems rejects the items the derivation engine would refuse.
func LineItems(items []models.LineItem) error {
	for idx, it := range items {
		if it.Quantity <= 0 {
			return apperr.Validation(fmt.Sprintf("items[%d].quantity", idx), "la cantidad debe ser mayor que cero")
		}
		if it.UnitPrice < 0 {
			return apperr.Validation(fmt.Sprintf("items[%d].unit_price", idx), "el precio no puede ser negativo")
		}
	}
	return nil
}
