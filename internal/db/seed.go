package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// Seed inserts ds when the customers table is empty and reports whether it
// did. Ids are assigned by the database and references are remapped.
func Seed(ctx context.Context, db *gorm.DB, ds memory.Dataset) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&models.Customer{}).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count customers: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers := make(map[uint]uint, len(ds.Customers))
		for _, c := range ds.Customers {
			old := c.ID
			c.ID = 0
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("seed customer %q: %w", c.Name, err)
			}
			customers[old] = c.ID
		}

		appointments := make(map[uint]uint, len(ds.Appointments))
		for _, a := range ds.Appointments {
			old := a.ID
			a.ID = 0
			a.Customer = nil
			a.CustomerID = customers[a.CustomerID]
			if err := tx.Create(&a).Error; err != nil {
				return fmt.Errorf("seed appointment %d: %w", old, err)
			}
			appointments[old] = a.ID
		}

		for _, it := range ds.Inventory {
			it.ID = 0
			if err := tx.Create(&it).Error; err != nil {
				return fmt.Errorf("seed item %s: %w", it.SKU, err)
			}
		}

		orders := make(map[uint]uint, len(ds.RepairOrders))
		for _, o := range ds.RepairOrders {
			old := o.ID
			o.ID = 0
			o.Customer = nil
			o.CustomerID = customers[o.CustomerID]
			o.AppointmentID = remap(appointments, o.AppointmentID)
			if err := tx.Create(&o).Error; err != nil {
				return fmt.Errorf("seed repair order %d: %w", old, err)
			}
			orders[old] = o.ID
		}

		for _, inv := range ds.Invoices {
			inv.ID = 0
			inv.Customer = nil
			inv.CustomerID = customers[inv.CustomerID]
			inv.RepairOrderID = remap(orders, inv.RepairOrderID)
			if err := tx.Create(&inv).Error; err != nil {
				return fmt.Errorf("seed invoice %s: %w", inv.InvoiceNumber, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func remap(ids map[uint]uint, id *uint) *uint {
	if id == nil {
		return nil
	}
	v, ok := ids[*id]
	if !ok {
		return nil
	}
	return &v
}
