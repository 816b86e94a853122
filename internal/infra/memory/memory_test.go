package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

var clock = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func seed() Dataset {
	return Dataset{
		Customers: []models.Customer{
			{ID: 1, Name: "Ana", Email: "ana@example.com", Phone: "600111222", CreatedAt: clock.Add(-48 * time.Hour)},
			{ID: 2, Name: "Luis", CreatedAt: clock.Add(-24 * time.Hour)},
		},
		Appointments: []models.Appointment{
			{ID: 1, CustomerID: 1, AppointmentDate: clock.Add(2 * time.Hour), Status: "pending", EstimatedDuration: 60},
			{ID: 2, CustomerID: 7, AppointmentDate: clock.Add(time.Hour), Status: "confirmed", EstimatedDuration: 30},
		},
		Inventory: []models.InventoryItem{
			{ID: 1, Name: "Filtro", SKU: "FLT-1", Category: "Filtros", Quantity: 3, MinQuantity: 5},
		},
		Invoices: []models.Invoice{
			{ID: 1, InvoiceNumber: "FAC-2026-0004", CustomerID: 1, IssueDate: clock.Add(-time.Hour), Status: "paid",
				Items: []models.LineItem{{Description: "Aceite", Quantity: 1, UnitPrice: 100}}},
		},
	}
}

func newGateway(t *testing.T) (*DB, gateway.Gateway) {
	t.Helper()
	db := NewDB(derive.Engine{TaxRate: derive.DefaultTaxRate}, "FAC", seed())
	db.SetClock(func() time.Time { return clock })
	return db, db.Gateway()
}

func TestListJoinsAndOrders(t *testing.T) {
	_, gw := newGateway(t)
	ctx := context.Background()

	customers, err := gw.Customers.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Luis", customers[0].Name)
	assert.Equal(t, 1, customers[1].AppointmentsCount)
	assert.Equal(t, 121.0, customers[1].TotalSpent)

	appointments, err := gw.Appointments.List(ctx)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, gateway.UnknownCustomer, appointments[0].CustomerName)
	assert.Equal(t, "Ana", appointments[1].CustomerName)
	assert.Equal(t, "600111222", appointments[1].CustomerPhone)

	items, err := gw.Inventory.List(ctx)
	require.NoError(t, err)
	assert.True(t, items[0].IsLowStock)
}

func TestCreateValidatesLikeTheStore(t *testing.T) {
	_, gw := newGateway(t)
	ctx := context.Background()

	_, err := gw.Appointments.Create(ctx, dto.AppointmentInput{CustomerID: 99, AppointmentDate: clock})
	assert.True(t, apperr.IsValidation(err))

	_, err = gw.Inventory.Create(ctx, dto.InventoryItemInput{Name: "Otro", SKU: "FLT-1", Category: "Filtros", MinQuantity: 1})
	assert.True(t, apperr.IsConflict(err))

	inv, err := gw.Invoices.Create(ctx, dto.InvoiceInput{CustomerID: 2})
	require.NoError(t, err)
	assert.Equal(t, "FAC-2026-0005", inv.InvoiceNumber)
	assert.Equal(t, clock.Add(paymentTerms), inv.DueDate)

	_, err = gw.Invoices.Update(ctx, inv.ID, dto.InvoicePatch{InvoiceNumber: strPtr("FAC-2026-0004")})
	assert.True(t, apperr.IsConflict(err))

	o, err := gw.RepairOrders.Create(ctx, dto.RepairOrderInput{CustomerID: 2, Items: []models.LineItem{{Description: "Frenos", Quantity: 2, UnitPrice: 40}}})
	require.NoError(t, err)
	assert.Equal(t, 80.0, o.TotalCost)
	assert.Equal(t, "Luis", o.CustomerName)
}

func TestUpdateAndDelete(t *testing.T) {
	_, gw := newGateway(t)
	ctx := context.Background()

	c, err := gw.Customers.Update(ctx, 2, dto.CustomerPatch{Phone: strPtr("699000111")})
	require.NoError(t, err)
	assert.Equal(t, "699000111", c.Phone)

	_, err = gw.Customers.Update(ctx, 50, dto.CustomerPatch{})
	assert.True(t, apperr.IsNotFound(err))

	assert.True(t, apperr.IsValidation(gw.Customers.Delete(ctx, 1)))
	require.NoError(t, gw.Customers.Delete(ctx, 2))
	assert.True(t, apperr.IsNotFound(gw.Customers.Delete(ctx, 2)))

	_, err = gw.Invoices.Update(ctx, 1, dto.InvoicePatch{Status: strPtr("cancelled")})
	assert.True(t, apperr.IsValidation(err), "paid invoices are final")

	ap, err := gw.Appointments.Update(ctx, 1, dto.AppointmentPatch{Status: strPtr("confirmed")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", ap.Status)
	require.NoError(t, gw.Appointments.Delete(ctx, 1))
	assert.True(t, apperr.IsNotFound(gw.Appointments.Delete(ctx, 1)))
}

func TestResetDiscardsChanges(t *testing.T) {
	db, gw := newGateway(t)
	ctx := context.Background()

	created, err := gw.Customers.Create(ctx, dto.CustomerInput{Name: "Marta"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), created.ID)

	db.Reset(gateway.Customers)

	customers, err := gw.Customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	again, err := gw.Customers.Create(ctx, dto.CustomerInput{Name: "Marta"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), again.ID)
}

func TestListDoesNotExposeInternalState(t *testing.T) {
	_, gw := newGateway(t)
	ctx := context.Background()

	list, err := gw.Invoices.List(ctx)
	require.NoError(t, err)
	list[0].Items[0].Quantity = 50

	reread, err := gw.Invoices.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.0, reread[0].Items[0].Quantity)
	assert.Equal(t, 121.0, reread[0].Total)
}

func TestSeedIsNotShared(t *testing.T) {
	ds := seed()
	db := NewDB(derive.Engine{TaxRate: derive.DefaultTaxRate}, "FAC", ds)
	ds.Invoices[0].Items[0].UnitPrice = 1

	list, err := db.Gateway().Invoices.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 121.0, list[0].Total)
}

func TestDeleteRefusesReferencedRecords(t *testing.T) {
	_, gw := newGateway(t)
	ctx := context.Background()

	order, err := gw.RepairOrders.Create(ctx, dto.RepairOrderInput{CustomerID: 1, AppointmentID: uintPtr(1)})
	require.NoError(t, err)
	inv, err := gw.Invoices.Create(ctx, dto.InvoiceInput{CustomerID: 1, RepairOrderID: uintPtr(order.ID)})
	require.NoError(t, err)

	assert.True(t, apperr.IsValidation(gw.Appointments.Delete(ctx, 1)))
	assert.True(t, apperr.IsValidation(gw.RepairOrders.Delete(ctx, order.ID)))

	require.NoError(t, gw.Invoices.Delete(ctx, inv.ID))
	require.NoError(t, gw.RepairOrders.Delete(ctx, order.ID))
	require.NoError(t, gw.Appointments.Delete(ctx, 1))
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
