package derive

import (
	"strings"

	"github.com/BruksfildServices01/taller-admin/internal/domain/inventory"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

// ListFilter is the search text and status chosen on a list page. Empty
// values match everything.
type ListFilter struct {
	Query  string
	Status string
}

func (f ListFilter) matches(status string, fields ...string) bool {
	if f.Status != "" && f.Status != "all" && status != f.Status {
		return false
	}
	return containsAny(f.Query, fields...)
}

func containsAny(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func FilterCustomers(customers []dto.CustomerView, query string) []dto.CustomerView {
	out := []dto.CustomerView{}
	for _, c := range customers {
		if containsAny(query, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out
}

func FilterAppointments(appointments []dto.AppointmentView, f ListFilter) []dto.AppointmentView {
	out := []dto.AppointmentView{}
	for _, a := range appointments {
		if f.matches(a.Status, a.CustomerName, a.CustomerPhone, a.Description) {
			out = append(out, a)
		}
	}
	return out
}

func FilterRepairOrders(orders []dto.RepairOrderView, f ListFilter) []dto.RepairOrderView {
	out := []dto.RepairOrderView{}
	for _, o := range orders {
		if f.matches(o.Status, o.CustomerName, o.VehicleInfo, o.Description) {
			out = append(out, o)
		}
	}
	return out
}

func FilterInvoices(invoices []dto.InvoiceView, f ListFilter) []dto.InvoiceView {
	out := []dto.InvoiceView{}
	for _, inv := range invoices {
		if f.matches(inv.Status, inv.CustomerName, inv.InvoiceNumber, inv.CustomerEmail) {
			out = append(out, inv)
		}
	}
	return out
}

// FilterInventory searches name, sku and category; lowStockOnly keeps the
// items for which IsLowStock holds.
func FilterInventory(items []dto.InventoryItemView, query string, lowStockOnly bool) []dto.InventoryItemView {
	out := []dto.InventoryItemView{}
	for _, it := range items {
		if lowStockOnly && !IsLowStock(it.InventoryItem) {
			continue
		}
		if containsAny(query, it.Name, it.SKU, it.Category) {
			out = append(out, it)
		}
	}
	return out
}

type CategoryGroup struct {
	Category string                  `json:"category"`
	Count    int                     `json:"count"`
	LowStock int                     `json:"low_stock"`
	Items    []dto.InventoryItemView `json:"items"`
}

// GroupByCategory buckets items following the category vocabulary order;
// items with an unknown category land in "Otros". Empty groups are omitted.
func GroupByCategory(items []dto.InventoryItemView) []CategoryGroup {
	buckets := make(map[inventory.Category][]dto.InventoryItemView)
	for _, it := range items {
		c := inventory.Category(it.Category)
		if !c.Valid() {
			c = inventory.CategoryOther
		}
		buckets[c] = append(buckets[c], it)
	}

	out := []CategoryGroup{}
	for _, c := range inventory.Categories() {
		group := buckets[c]
		if len(group) == 0 {
			continue
		}
		low := 0
		for _, it := range group {
			if IsLowStock(it.InventoryItem) {
				low++
			}
		}
		out = append(out, CategoryGroup{
			Category: string(c),
			Count:    len(group),
			LowStock: low,
			Items:    group,
		})
	}
	return out
}
