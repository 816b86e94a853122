package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

func TestFlattenMissingCustomer(t *testing.T) {
	v := AppointmentView(models.Appointment{ID: 1, CustomerID: 9}, nil)
	assert.Equal(t, UnknownCustomer, v.CustomerName)
	assert.Empty(t, v.CustomerPhone)
	assert.Empty(t, v.CustomerEmail)
}

func TestFlattenJoinedCustomer(t *testing.T) {
	c := &models.Customer{ID: 2, Name: "Ana", Phone: "600111222", Email: "ana@example.com"}
	row := models.Appointment{ID: 1, CustomerID: 2, Customer: c}

	v := AppointmentView(row, c)
	assert.Equal(t, "Ana", v.CustomerName)
	assert.Equal(t, "600111222", v.CustomerPhone)
	assert.Equal(t, "ana@example.com", v.CustomerEmail)
	assert.Nil(t, v.Customer)
	assert.NotNil(t, row.Customer)
}

func TestInvoiceViewTotals(t *testing.T) {
	row := models.Invoice{
		ID: 1, CustomerID: 2, Status: "paid",
		Items: []models.LineItem{{Quantity: 2, UnitPrice: 25}, {Quantity: 1, UnitPrice: 60}, {Quantity: 4, UnitPrice: 5}},
	}
	v, err := InvoiceView(derive.Engine{TaxRate: derive.DefaultTaxRate}, row, nil)
	require.NoError(t, err)
	assert.Equal(t, 130.0, v.Subtotal)
	assert.Equal(t, 27.3, v.Tax)
	assert.Equal(t, 157.3, v.Total)
	assert.Equal(t, UnknownCustomer, v.CustomerName)
}

func TestInvoiceViewRejectsBrokenItems(t *testing.T) {
	row := models.Invoice{Items: []models.LineItem{{Quantity: -1, UnitPrice: 5}}}
	_, err := InvoiceView(derive.Engine{TaxRate: derive.DefaultTaxRate}, row, nil)
	assert.True(t, apperr.IsInvalidLineItem(err))
}

func TestRepairOrderViewEmptyItems(t *testing.T) {
	v, err := RepairOrderView(models.RepairOrder{ID: 3}, &models.Customer{Name: "Luis"})
	require.NoError(t, err)
	assert.Zero(t, v.TotalCost)
	assert.NotNil(t, v.Items)
	assert.Equal(t, "Luis", v.CustomerName)
}

func TestCustomerViews(t *testing.T) {
	customers := []models.Customer{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}}
	appointments := []dto.AppointmentView{{Appointment: models.Appointment{CustomerID: 1}}}
	invoices := []dto.InvoiceView{
		{Invoice: models.Invoice{CustomerID: 1, Status: "paid"}, Total: 121},
		{Invoice: models.Invoice{CustomerID: 1, Status: "overdue"}, Total: 60.5},
	}

	views := CustomerViews(customers, appointments, invoices)
	require.Len(t, views, 2)
	assert.Equal(t, 1, views[0].AppointmentsCount)
	assert.Equal(t, 121.0, views[0].TotalSpent)
	assert.Zero(t, views[1].TotalSpent)
}

func TestInventoryItemView(t *testing.T) {
	assert.False(t, InventoryItemView(models.InventoryItem{Quantity: 5, MinQuantity: 5}).IsLowStock)
	assert.True(t, InventoryItemView(models.InventoryItem{Quantity: 4, MinQuantity: 5}).IsLowStock)
}
