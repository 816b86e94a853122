// Package gateway defines the persistence contract every store adapter
// satisfies and the read-side transforms the adapters share.
package gateway

import (
	"context"

	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

// Entity names a collection of the store.
type Entity string

const (
	Customers    Entity = "customers"
	Appointments Entity = "appointments"
	Inventory    Entity = "inventory"
	RepairOrders Entity = "repair_orders"
	Invoices     Entity = "invoices"
)

// Entities lists every collection in load order.
func Entities() []Entity {
	return []Entity{Customers, Appointments, Inventory, RepairOrders, Invoices}
}

// Store is the CRUD contract of one collection. V is the read view, I the
// create input and P the partial update.
//
// Create and Update return a *apperr.ValidationError when a field is out
// of range or the referenced customer does not exist, a
// *apperr.ConflictError on a duplicate sku or invoice number and a
// *apperr.NotFoundError when the target id is absent. Infrastructure
// failures come back as *apperr.TransportError.
type Store[V, I, P any] interface {
	List(ctx context.Context) ([]V, error)
	Create(ctx context.Context, in I) (V, error)
	Update(ctx context.Context, id uint, patch P) (V, error)
	Delete(ctx context.Context, id uint) error
}

type (
	CustomerStore    = Store[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch]
	AppointmentStore = Store[dto.AppointmentView, dto.AppointmentInput, dto.AppointmentPatch]
	InventoryStore   = Store[dto.InventoryItemView, dto.InventoryItemInput, dto.InventoryItemPatch]
	RepairOrderStore = Store[dto.RepairOrderView, dto.RepairOrderInput, dto.RepairOrderPatch]
	InvoiceStore     = Store[dto.InvoiceView, dto.InvoiceInput, dto.InvoicePatch]
)

// Gateway bundles the stores of one backend.
type Gateway struct {
	Customers    CustomerStore
	Appointments AppointmentStore
	Inventory    InventoryStore
	RepairOrders RepairOrderStore
	Invoices     InvoiceStore
}
