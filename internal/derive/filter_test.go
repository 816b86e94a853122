package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

func TestFilterCustomers(t *testing.T) {
	customers := []dto.CustomerView{
		{Customer: models.Customer{ID: 1, Name: "Ana García", Email: "ana@example.com", Phone: "600111222"}},
		{Customer: models.Customer{ID: 2, Name: "Luis Pérez", Email: "luis@example.com", Phone: "600333444"}},
	}

	assert.Len(t, FilterCustomers(customers, ""), 2)
	assert.Len(t, FilterCustomers(customers, "  GARCÍA "), 1)
	assert.Len(t, FilterCustomers(customers, "333"), 1)
	assert.Len(t, FilterCustomers(customers, "example"), 2)
	assert.Empty(t, FilterCustomers(customers, "zzz"))
}

func TestFilterWithStatus(t *testing.T) {
	invoices := []dto.InvoiceView{
		{Invoice: models.Invoice{InvoiceNumber: "FAC-2026-0001", Status: "paid"}, CustomerName: "Ana"},
		{Invoice: models.Invoice{InvoiceNumber: "FAC-2026-0002", Status: "pending"}, CustomerName: "Luis"},
	}

	assert.Len(t, FilterInvoices(invoices, ListFilter{Status: "all"}), 2)
	assert.Len(t, FilterInvoices(invoices, ListFilter{Status: "paid"}), 1)
	assert.Len(t, FilterInvoices(invoices, ListFilter{Query: "0002"}), 1)
	assert.Empty(t, FilterInvoices(invoices, ListFilter{Query: "0002", Status: "paid"}))

	orders := []dto.RepairOrderView{
		{RepairOrder: models.RepairOrder{VehicleInfo: "Seat Ibiza 1234ABC", Status: "in_progress"}},
		{RepairOrder: models.RepairOrder{VehicleInfo: "Renault Clio", Status: "completed"}},
	}
	assert.Len(t, FilterRepairOrders(orders, ListFilter{Query: "ibiza"}), 1)
	assert.Len(t, FilterRepairOrders(orders, ListFilter{Status: "completed"}), 1)

	appointments := []dto.AppointmentView{
		{Appointment: models.Appointment{Description: "Cambio de aceite", Status: "pending"}, CustomerName: "Ana"},
	}
	assert.Len(t, FilterAppointments(appointments, ListFilter{Query: "aceite", Status: "pending"}), 1)
	assert.Empty(t, FilterAppointments(appointments, ListFilter{Status: "confirmed"}))
}

func TestFilterInventoryLowStockIsStrict(t *testing.T) {
	items := []dto.InventoryItemView{
		{InventoryItem: models.InventoryItem{Name: "Filtro aceite", SKU: "FLT-1", Category: "Filtros", Quantity: 5, MinQuantity: 5}},
		{InventoryItem: models.InventoryItem{Name: "Pastillas", SKU: "BRK-1", Category: "Frenos", Quantity: 4, MinQuantity: 5}},
	}

	low := FilterInventory(items, "", true)
	assert.Len(t, low, 1)
	assert.Equal(t, "BRK-1", low[0].SKU)

	assert.Len(t, FilterInventory(items, "flt", false), 1)
	assert.Len(t, FilterInventory(items, "frenos", false), 1)
}

func TestGroupByCategory(t *testing.T) {
	items := []dto.InventoryItemView{
		{InventoryItem: models.InventoryItem{Name: "Pastillas", Category: "Frenos", Quantity: 1, MinQuantity: 2}},
		{InventoryItem: models.InventoryItem{Name: "Aceite", Category: "Fluidos", Quantity: 10, MinQuantity: 2}},
		{InventoryItem: models.InventoryItem{Name: "Discos", Category: "Frenos", Quantity: 6, MinQuantity: 2}},
		{InventoryItem: models.InventoryItem{Name: "Raro", Category: "desconocida", Quantity: 6, MinQuantity: 2}},
	}

	groups := GroupByCategory(items)
	assert.Len(t, groups, 3)
	assert.Equal(t, "Fluidos", groups[0].Category)
	assert.Equal(t, "Frenos", groups[1].Category)
	assert.Equal(t, 2, groups[1].Count)
	assert.Equal(t, 1, groups[1].LowStock)
	assert.Equal(t, "Otros", groups[2].Category)
}
