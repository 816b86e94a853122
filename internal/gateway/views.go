package gateway

import (
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// UnknownCustomer replaces the name of a customer that no longer resolves.
const UnknownCustomer = "Cliente desconocido"

type contact struct {
	name, phone, email string
}

func flatten(c *models.Customer) contact {
	if c == nil {
		return contact{name: UnknownCustomer}
	}
	return contact{name: c.Name, phone: c.Phone, email: c.Email}
}

// The view builders below take the joined customer, nil when it is missing.
// The returned view never shares the Customer pointer with the row.

func AppointmentView(row models.Appointment, c *models.Customer) dto.AppointmentView {
	ct := flatten(c)
	row.Customer = nil
	return dto.AppointmentView{
		Appointment:   row,
		CustomerName:  ct.name,
		CustomerPhone: ct.phone,
		CustomerEmail: ct.email,
	}
}

func RepairOrderView(row models.RepairOrder, c *models.Customer) (dto.RepairOrderView, error) {
	total, err := derive.OrderTotal(row.Items)
	if err != nil {
		return dto.RepairOrderView{}, err
	}
	ct := flatten(c)
	row.Customer = nil
	if row.Items == nil {
		row.Items = []models.LineItem{}
	}
	return dto.RepairOrderView{
		RepairOrder:   row,
		CustomerName:  ct.name,
		CustomerPhone: ct.phone,
		CustomerEmail: ct.email,
		TotalCost:     derive.Money(total),
	}, nil
}

func InvoiceView(e derive.Engine, row models.Invoice, c *models.Customer) (dto.InvoiceView, error) {
	totals, err := e.InvoiceTotals(row.Items)
	if err != nil {
		return dto.InvoiceView{}, err
	}
	r := totals.Rounded()
	ct := flatten(c)
	row.Customer = nil
	if row.Items == nil {
		row.Items = []models.LineItem{}
	}
	return dto.InvoiceView{
		Invoice:       row,
		CustomerName:  ct.name,
		CustomerPhone: ct.phone,
		CustomerEmail: ct.email,
		Subtotal:      derive.Money(r.Subtotal),
		Tax:           derive.Money(r.Tax),
		Total:         derive.Money(r.Total),
	}, nil
}

func InventoryItemView(row models.InventoryItem) dto.InventoryItemView {
	return dto.InventoryItemView{
		InventoryItem: row,
		IsLowStock:    derive.IsLowStock(row),
	}
}

// CustomerViews attaches visit counts and paid spend to every customer.
func CustomerViews(customers []models.Customer, appointments []dto.AppointmentView, invoices []dto.InvoiceView) []dto.CustomerView {
	out := make([]dto.CustomerView, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerView(c, appointments, invoices))
	}
	return out
}

func CustomerView(c models.Customer, appointments []dto.AppointmentView, invoices []dto.InvoiceView) dto.CustomerView {
	stats := derive.ComputeCustomerStats(c.ID, appointments, invoices)
	return dto.CustomerView{
		Customer:          c,
		AppointmentsCount: stats.AppointmentsCount,
		TotalSpent:        derive.Money(stats.TotalSpent),
	}
}
