package derive

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

type CustomerStats struct {
	AppointmentsCount int
	TotalSpent        decimal.Decimal
}

// ComputeCustomerStats counts the customer's appointments and sums the
// totals of their paid invoices. Pending, overdue and cancelled invoices
// never contribute to the spend.
func ComputeCustomerStats(customerID uint, appointments []dto.AppointmentView, invoices []dto.InvoiceView) CustomerStats {
	var stats CustomerStats
	for _, a := range appointments {
		if a.CustomerID == customerID {
			stats.AppointmentsCount++
		}
	}

	var paid []float64
	for _, inv := range invoices {
		if inv.CustomerID == customerID && invoice.Status(inv.Status) == invoice.StatusPaid {
			paid = append(paid, inv.Total)
		}
	}
	stats.TotalSpent = sumMoney(paid)
	return stats
}

type CustomerRank struct {
	CustomerID uint    `json:"customer_id"`
	Name       string  `json:"name"`
	Visits     int     `json:"visits"`
	TotalSpent float64 `json:"total_spent"`
}

// TopCustomers ranks customers by lifetime spend and keeps the first n.
func TopCustomers(customers []dto.CustomerView, n int) []CustomerRank {
	ranked := make([]CustomerRank, 0, len(customers))
	for _, c := range customers {
		ranked = append(ranked, CustomerRank{
			CustomerID: c.ID,
			Name:       c.Name,
			Visits:     c.AppointmentsCount,
			TotalSpent: c.TotalSpent,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalSpent != ranked[j].TotalSpent {
			return ranked[i].TotalSpent > ranked[j].TotalSpent
		}
		return ranked[i].CustomerID < ranked[j].CustomerID
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
