package repository

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/gateway"
)

// NewGateway wires the gorm stores of every collection.
func NewGateway(db *gorm.DB, engine derive.Engine, invoicePrefix string) gateway.Gateway {
	return gateway.Gateway{
		Customers:    NewCustomerGormRepository(db, engine),
		Appointments: NewAppointmentGormRepository(db),
		Inventory:    NewInventoryGormRepository(db),
		RepairOrders: NewRepairOrderGormRepository(db),
		Invoices:     NewInvoiceGormRepository(db, engine, invoicePrefix),
	}
}
