package dto

import "github.com/BruksfildServices01/taller-admin/internal/models"

// ======================================================
// Read views
//
// A view embeds the stored row and adds the fields computed on read.
// None of the extra fields exist on the row types, so they never reach
// the store.
// ======================================================

type CustomerView struct {
	models.Customer
	AppointmentsCount int     `json:"appointments_count"`
	TotalSpent        float64 `json:"total_spent"`
}

func (v CustomerView) Key() uint { return v.ID }

type AppointmentView struct {
	models.Appointment
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email"`
}

func (v AppointmentView) Key() uint { return v.ID }

type InventoryItemView struct {
	models.InventoryItem
	IsLowStock bool `json:"is_low_stock"`
}

func (v InventoryItemView) Key() uint { return v.ID }

type RepairOrderView struct {
	models.RepairOrder
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	TotalCost     float64 `json:"total_cost"`
}

func (v RepairOrderView) Key() uint { return v.ID }

type InvoiceView struct {
	models.Invoice
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail string  `json:"customer_email"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

func (v InvoiceView) Key() uint { return v.ID }
