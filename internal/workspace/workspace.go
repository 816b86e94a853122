// Package workspace serves every collection through the fallback policy:
// loads try the live gateway first and fall back to the sample dataset,
// mutations follow the mode the entity is in.
package workspace

import (
	"context"
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/audit"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
)

type (
	CustomerCollection    = Collection[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch]
	AppointmentCollection = Collection[dto.AppointmentView, dto.AppointmentInput, dto.AppointmentPatch]
	InventoryCollection   = Collection[dto.InventoryItemView, dto.InventoryItemInput, dto.InventoryItemPatch]
	RepairOrderCollection = Collection[dto.RepairOrderView, dto.RepairOrderInput, dto.RepairOrderPatch]
	InvoiceCollection     = Collection[dto.InvoiceView, dto.InvoiceInput, dto.InvoicePatch]
)

type Workspace struct {
	Customers    *CustomerCollection
	Appointments *AppointmentCollection
	Inventory    *InventoryCollection
	RepairOrders *RepairOrderCollection
	Invoices     *InvoiceCollection

	policy *fallback.Policy
	local  *memory.DB
	audit  *audit.Dispatcher
	loc    *time.Location
}

func New(
	live gateway.Gateway,
	local *memory.DB,
	policy *fallback.Policy,
	dispatcher *audit.Dispatcher,
	loc *time.Location,
) *Workspace {
	if loc == nil {
		loc = time.UTC
	}
	ws := &Workspace{
		policy: policy,
		local:  local,
		audit:  dispatcher,
		loc:    loc,
	}

	sample := local.Gateway()
	ws.Customers = newCollection(ws, gateway.Customers, "customer", live.Customers, sample.Customers)
	ws.Appointments = newCollection(ws, gateway.Appointments, "appointment", live.Appointments, sample.Appointments)
	ws.Inventory = newCollection(ws, gateway.Inventory, "inventory_item", live.Inventory, sample.Inventory)
	ws.RepairOrders = newCollection(ws, gateway.RepairOrders, "repair_order", live.RepairOrders, sample.RepairOrders)
	ws.Invoices = newCollection(ws, gateway.Invoices, "invoice", live.Invoices, sample.Invoices)
	return ws
}

func (ws *Workspace) Location() *time.Location {
	return ws.loc
}

// Overview is a derived read built from every collection. Fallback lists
// the entities that were served from sample data.
type Overview[T any] struct {
	Data     T                 `json:"data"`
	Fallback []gateway.Entity  `json:"fallback_entities"`
	Notices  []fallback.Notice `json:"notices"`
}

type loaded struct {
	snapshot derive.Snapshot
	fallback []gateway.Entity
	notices  []fallback.Notice
}

func (l *loaded) note(entity gateway.Entity, fb bool, n *fallback.Notice) {
	if !fb {
		return
	}
	l.fallback = append(l.fallback, entity)
	if n != nil {
		l.notices = append(l.notices, *n)
	}
}

func (ws *Workspace) load(ctx context.Context) (loaded, error) {
	l := loaded{fallback: []gateway.Entity{}, notices: []fallback.Notice{}}

	customers, err := ws.Customers.Load(ctx)
	if err != nil {
		return l, err
	}
	l.snapshot.Customers = customers.Items
	l.note(gateway.Customers, customers.Fallback, customers.Notice)

	appointments, err := ws.Appointments.Load(ctx)
	if err != nil {
		return l, err
	}
	l.snapshot.Appointments = appointments.Items
	l.note(gateway.Appointments, appointments.Fallback, appointments.Notice)

	inventory, err := ws.Inventory.Load(ctx)
	if err != nil {
		return l, err
	}
	l.snapshot.Inventory = inventory.Items
	l.note(gateway.Inventory, inventory.Fallback, inventory.Notice)

	orders, err := ws.RepairOrders.Load(ctx)
	if err != nil {
		return l, err
	}
	l.snapshot.RepairOrders = orders.Items
	l.note(gateway.RepairOrders, orders.Fallback, orders.Notice)

	invoices, err := ws.Invoices.Load(ctx)
	if err != nil {
		return l, err
	}
	l.snapshot.Invoices = invoices.Items
	l.note(gateway.Invoices, invoices.Fallback, invoices.Notice)

	return l, nil
}

func (ws *Workspace) Report(ctx context.Context) (Overview[derive.Report], error) {
	l, err := ws.load(ctx)
	if err != nil {
		return Overview[derive.Report]{}, err
	}
	return Overview[derive.Report]{
		Data:     derive.BuildReport(l.snapshot, ws.loc),
		Fallback: l.fallback,
		Notices:  l.notices,
	}, nil
}

// Dashboard computes the daily summary for the calendar day of now in the
// shop's location.
func (ws *Workspace) Dashboard(ctx context.Context, now time.Time) (Overview[derive.Dashboard], error) {
	l, err := ws.load(ctx)
	if err != nil {
		return Overview[derive.Dashboard]{}, err
	}
	return Overview[derive.Dashboard]{
		Data:     derive.BuildDashboard(l.snapshot, now.In(ws.loc)),
		Fallback: l.fallback,
		Notices:  l.notices,
	}, nil
}
