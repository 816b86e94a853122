// Package memory is an in-process implementation of the persistence
// gateway with the same validation, join and ordering rules as the gorm
// stores.
package memory

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// Dataset is a full copy of every collection.
type Dataset struct {
	Customers    []models.Customer
	Appointments []models.Appointment
	Inventory    []models.InventoryItem
	RepairOrders []models.RepairOrder
	Invoices     []models.Invoice
}

// Clone returns a deep copy; line items and optional fields are not shared.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Customers:    append([]models.Customer(nil), d.Customers...),
		Appointments: append([]models.Appointment(nil), d.Appointments...),
		Inventory:    make([]models.InventoryItem, len(d.Inventory)),
		RepairOrders: make([]models.RepairOrder, len(d.RepairOrders)),
		Invoices:     make([]models.Invoice, len(d.Invoices)),
	}
	for i := range out.Appointments {
		out.Appointments[i].Customer = nil
	}
	for i, it := range d.Inventory {
		out.Inventory[i] = cloneInventoryItem(it)
	}
	for i, o := range d.RepairOrders {
		out.RepairOrders[i] = cloneRepairOrder(o)
	}
	for i, inv := range d.Invoices {
		out.Invoices[i] = cloneInvoice(inv)
	}
	return out
}

// DB holds the collections behind a single lock.
type DB struct {
	mu     sync.RWMutex
	engine derive.Engine
	prefix string
	now    func() time.Time

	seed Dataset
	data Dataset
	seq  map[gateway.Entity]uint
}

// NewDB starts from a copy of seed; Reset returns a collection to it.
func NewDB(engine derive.Engine, invoicePrefix string, seed Dataset) *DB {
	db := &DB{
		engine: engine,
		prefix: invoicePrefix,
		now:    time.Now,
		seed:   seed.Clone(),
		seq:    make(map[gateway.Entity]uint),
	}
	db.data = db.seed.Clone()
	for _, e := range gateway.Entities() {
		db.resetSeq(e)
	}
	return db
}

// SetClock replaces the time source used for timestamps and numbering.
func (db *DB) SetClock(now func() time.Time) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.now = now
}

// Gateway exposes the collections through the store contract.
func (db *DB) Gateway() gateway.Gateway {
	return gateway.Gateway{
		Customers:    &CustomerStore{db: db},
		Appointments: &AppointmentStore{db: db},
		Inventory:    &InventoryStore{db: db},
		RepairOrders: &RepairOrderStore{db: db},
		Invoices:     &InvoiceStore{db: db},
	}
}

// Reset discards every change made to one collection.
func (db *DB) Reset(entity gateway.Entity) {
	db.mu.Lock()
	defer db.mu.Unlock()

	seed := db.seed.Clone()
	switch entity {
	case gateway.Customers:
		db.data.Customers = seed.Customers
	case gateway.Appointments:
		db.data.Appointments = seed.Appointments
	case gateway.Inventory:
		db.data.Inventory = seed.Inventory
	case gateway.RepairOrders:
		db.data.RepairOrders = seed.RepairOrders
	case gateway.Invoices:
		db.data.Invoices = seed.Invoices
	}
	db.resetSeq(entity)
}

func (db *DB) resetSeq(entity gateway.Entity) {
	var max uint
	bump := func(id uint) {
		if id > max {
			max = id
		}
	}
	switch entity {
	case gateway.Customers:
		for _, r := range db.data.Customers {
			bump(r.ID)
		}
	case gateway.Appointments:
		for _, r := range db.data.Appointments {
			bump(r.ID)
		}
	case gateway.Inventory:
		for _, r := range db.data.Inventory {
			bump(r.ID)
		}
	case gateway.RepairOrders:
		for _, r := range db.data.RepairOrders {
			bump(r.ID)
		}
	case gateway.Invoices:
		for _, r := range db.data.Invoices {
			bump(r.ID)
		}
	}
	db.seq[entity] = max
}

func (db *DB) nextID(entity gateway.Entity) uint {
	db.seq[entity]++
	return db.seq[entity]
}

// customer returns a copy of the customer or nil. Callers hold the lock.
func (db *DB) customer(id uint) *models.Customer {
	for _, c := range db.data.Customers {
		if c.ID == id {
			cp := c
			return &cp
		}
	}
	return nil
}

// --------------------------------------------------
// Copy helpers
// --------------------------------------------------

func cloneItems(items []models.LineItem) []models.LineItem {
	if items == nil {
		return nil
	}
	return append([]models.LineItem(nil), items...)
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneUint(p *uint) *uint {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInventoryItem(it models.InventoryItem) models.InventoryItem {
	it.LastRestocked = cloneTime(it.LastRestocked)
	return it
}

func cloneRepairOrder(o models.RepairOrder) models.RepairOrder {
	o.Customer = nil
	o.AppointmentID = cloneUint(o.AppointmentID)
	o.ActualCost = cloneFloat(o.ActualCost)
	o.StartDate = cloneTime(o.StartDate)
	o.CompletionDate = cloneTime(o.CompletionDate)
	o.Items = cloneItems(o.Items)
	return o
}

func cloneInvoice(inv models.Invoice) models.Invoice {
	inv.Customer = nil
	inv.RepairOrderID = cloneUint(inv.RepairOrderID)
	inv.Items = cloneItems(inv.Items)
	return inv
}
