package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/models"
)

var derivedKeys = []string{
	"customer_name",
	"customer_phone",
	"customer_email",
	"appointments_count",
	"total_spent",
	"subtotal",
	"tax",
	"total",
	"total_cost",
	"is_low_stock",
}

// roundTrip decodes a view's JSON into a patch, applies it to the stored
// row and returns the row as the map that would be written.
func roundTrip[P interface{ Apply(*R) }, R any](t *testing.T, view any, row *R) map[string]any {
	t.Helper()

	body, err := json.Marshal(view)
	require.NoError(t, err)

	var patch P
	require.NoError(t, json.Unmarshal(body, &patch))
	patch.Apply(row)

	out, err := json.Marshal(row)
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(out, &payload))
	return payload
}

func assertNoDerived(t *testing.T, payload map[string]any) {
	t.Helper()
	for _, k := range derivedKeys {
		assert.NotContains(t, payload, k)
	}
}

func TestReadEditWritePayloadHasNoDerivedFields(t *testing.T) {
	customer := CustomerView{
		Customer:          models.Customer{ID: 1, Name: "Ana"},
		AppointmentsCount: 4,
		TotalSpent:        320,
	}
	row := customer.Customer
	payload := roundTrip[*CustomerPatch](t, customer, &row)
	assertNoDerived(t, payload)
	assert.Equal(t, "Ana", payload["name"])

	appt := AppointmentView{
		Appointment:  models.Appointment{ID: 2, CustomerID: 1, Status: "pending", AppointmentDate: time.Now()},
		CustomerName: "Ana",
	}
	apptRow := appt.Appointment
	assertNoDerived(t, roundTrip[*AppointmentPatch](t, appt, &apptRow))

	inv := InvoiceView{
		Invoice:      models.Invoice{ID: 3, InvoiceNumber: "FAC-2026-0001", CustomerID: 1},
		CustomerName: "Ana",
		Subtotal:     100,
		Tax:          21,
		Total:        121,
	}
	invRow := inv.Invoice
	assertNoDerived(t, roundTrip[*InvoicePatch](t, inv, &invRow))

	order := RepairOrderView{
		RepairOrder:  models.RepairOrder{ID: 4, CustomerID: 1},
		CustomerName: "Ana",
		TotalCost:    80,
	}
	orderRow := order.RepairOrder
	assertNoDerived(t, roundTrip[*RepairOrderPatch](t, order, &orderRow))

	item := InventoryItemView{
		InventoryItem: models.InventoryItem{ID: 5, SKU: "FLT-1", Quantity: 1, MinQuantity: 3},
		IsLowStock:    true,
	}
	itemRow := item.InventoryItem
	assertNoDerived(t, roundTrip[*InventoryItemPatch](t, item, &itemRow))
}

func TestAppointmentInputDefaults(t *testing.T) {
	m := AppointmentInput{CustomerID: 1, AppointmentDate: time.Now()}.Model()
	assert.Equal(t, "pending", m.Status)
	assert.Equal(t, 60, m.EstimatedDuration)
}

func TestPatchItemsAreCopied(t *testing.T) {
	items := []models.LineItem{{Description: "Aceite", Quantity: 1, UnitPrice: 30}}
	var row models.Invoice
	InvoicePatch{Items: &items}.Apply(&row)

	items[0].Quantity = 99
	assert.Equal(t, 1.0, row.Items[0].Quantity)
}

func TestInventoryInputDefaultsMinQuantity(t *testing.T) {
	m := InventoryItemInput{Name: "Filtro", SKU: "FLT-1", Category: "Filtros"}.Model()
	assert.Equal(t, DefaultMinQuantity, m.MinQuantity)

	m = InventoryItemInput{Name: "Filtro", SKU: "FLT-1", Category: "Filtros", MinQuantity: 2}.Model()
	assert.Equal(t, 2, m.MinQuantity)
}

func TestPatchColumnsListOnlySetFields(t *testing.T) {
	name := "Ana"
	notes := ""
	cols := CustomerPatch{Name: &name, Notes: &notes}.Columns()
	assert.Equal(t, map[string]any{"name": "Ana", "notes": ""}, cols)

	assert.Empty(t, InvoicePatch{}.Columns())

	status := "paid"
	items := []models.LineItem{{Description: "Aceite", Quantity: 1, UnitPrice: 30}}
	cols = InvoicePatch{Status: &status, Items: &items}.Columns()
	assert.Equal(t, "paid", cols["status"])
	assert.Equal(t, items, cols["items"])
	assert.Len(t, cols, 2)
}

func TestPatchColumnsFromViewHaveNoDerivedKeys(t *testing.T) {
	view := RepairOrderView{
		RepairOrder:   models.RepairOrder{ID: 4, CustomerID: 1, Status: "pending"},
		CustomerName:  "Ana",
		CustomerPhone: "600000000",
		TotalCost:     80,
	}
	body, err := json.Marshal(view)
	require.NoError(t, err)

	var patch RepairOrderPatch
	require.NoError(t, json.Unmarshal(body, &patch))
	cols := patch.Columns()
	for _, k := range derivedKeys {
		assert.NotContains(t, cols, k)
	}
	assert.Equal(t, uint(1), cols["customer_id"])
}
