package derive

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/domain/repairorder"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

// ======================================================
// Statistics
// ======================================================

type Statistics struct {
	TotalRevenue    float64 `json:"total_revenue"`
	CompletedOrders int     `json:"completed_orders"`
	UniqueCustomers int     `json:"unique_customers"`
	AverageTicket   float64 `json:"average_ticket"`
}

// ReportStatistics aggregates revenue from paid invoices and order counts.
// The average ticket is zero when no order is completed.
func ReportStatistics(invoices []dto.InvoiceView, orders []dto.RepairOrderView, _ []dto.CustomerView) Statistics {
	revenue := sumMoney(paidTotals(invoices))

	completed := 0
	customers := make(map[uint]struct{})
	for _, o := range orders {
		customers[o.CustomerID] = struct{}{}
		if repairorder.Status(o.Status) == repairorder.StatusCompleted {
			completed++
		}
	}

	avg := decimal.Zero
	if completed > 0 {
		avg = revenue.Div(decimal.NewFromInt(int64(completed)))
	}

	return Statistics{
		TotalRevenue:    Money(revenue),
		CompletedOrders: completed,
		UniqueCustomers: len(customers),
		AverageTicket:   Money(avg),
	}
}

func paidTotals(invoices []dto.InvoiceView) []float64 {
	var out []float64
	for _, inv := range invoices {
		if invoice.Status(inv.Status) == invoice.StatusPaid {
			out = append(out, inv.Total)
		}
	}
	return out
}

// ======================================================
// Service distribution
// ======================================================

const (
	ServiceOilChange  = "Cambio de Aceite"
	ServiceBrakes     = "Frenos"
	ServiceTires      = "Neumáticos"
	ServiceDiagnostic = "Diagnóstico"
	ServiceOther      = "Otros"
)

// serviceRules are checked in order; the first match wins.
var serviceRules = []struct {
	category string
	keywords []string
}{
	{ServiceOilChange, []string{"aceite", "oil"}},
	{ServiceBrakes, []string{"freno", "brake"}},
	{ServiceTires, []string{"neumático", "neumatico", "tire", "tyre"}},
	{ServiceDiagnostic, []string{"revisión", "revision", "diagnóstico", "diagnostico", "inspection", "diagnostic"}},
}

// ClassifyService maps a line item description to a service category.
func ClassifyService(description string) string {
	d := strings.ToLower(description)
	for _, rule := range serviceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.category
			}
		}
	}
	return ServiceOther
}

type ServiceShare struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// ServiceDistribution classifies every line item of every order. Shares
// follow the category order of the rules, "Otros" last, and categories
// without items are left out. No items yields an empty list.
func ServiceDistribution(orders []dto.RepairOrderView) []ServiceShare {
	counts := make(map[string]int)
	total := 0
	for _, o := range orders {
		for _, item := range o.Items {
			counts[ClassifyService(item.Description)]++
			total++
		}
	}

	out := []ServiceShare{}
	if total == 0 {
		return out
	}

	order := make([]string, 0, len(serviceRules)+1)
	for _, rule := range serviceRules {
		order = append(order, rule.category)
	}
	order = append(order, ServiceOther)

	for _, category := range order {
		n := counts[category]
		if n == 0 {
			continue
		}
		out = append(out, ServiceShare{
			Category:   category,
			Count:      n,
			Percentage: int(math.Round(float64(n) * 100 / float64(total))),
		})
	}
	return out
}

// ======================================================
// Monthly revenue
// ======================================================

// ExpenseRatio estimates monthly expenses as a share of revenue.
var ExpenseRatio = decimal.RequireFromString("0.70")

type MonthRevenue struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// MonthlyRevenue groups paid invoices by the month of their issue date in
// loc, oldest month first.
func MonthlyRevenue(invoices []dto.InvoiceView, loc *time.Location) []MonthRevenue {
	if loc == nil {
		loc = time.UTC
	}

	byMonth := make(map[string]decimal.Decimal)
	for _, inv := range invoices {
		if invoice.Status(inv.Status) != invoice.StatusPaid {
			continue
		}
		key := inv.IssueDate.In(loc).Format("2006-01")
		byMonth[key] = byMonth[key].Add(decimal.NewFromFloat(inv.Total))
	}

	months := make([]string, 0, len(byMonth))
	for k := range byMonth {
		months = append(months, k)
	}
	sort.Strings(months)

	out := make([]MonthRevenue, 0, len(months))
	for _, m := range months {
		rev := byMonth[m]
		out = append(out, MonthRevenue{
			Month:    m,
			Revenue:  Money(rev),
			Expenses: Money(rev.Mul(ExpenseRatio)),
		})
	}
	return out
}

// ======================================================
// Full report
// ======================================================

// Snapshot is every collection loaded for a report or dashboard cycle.
type Snapshot struct {
	Customers    []dto.CustomerView
	Appointments []dto.AppointmentView
	Inventory    []dto.InventoryItemView
	RepairOrders []dto.RepairOrderView
	Invoices     []dto.InvoiceView
}

type Report struct {
	Statistics     Statistics     `json:"statistics"`
	Services       []ServiceShare `json:"services"`
	TopCustomers   []CustomerRank `json:"top_customers"`
	StockLevels    []StockLevel   `json:"stock_levels"`
	MonthlyRevenue []MonthRevenue `json:"monthly_revenue"`
}

const reportTopN = 5

func BuildReport(s Snapshot, loc *time.Location) Report {
	return Report{
		Statistics:     ReportStatistics(s.Invoices, s.RepairOrders, s.Customers),
		Services:       ServiceDistribution(s.RepairOrders),
		TopCustomers:   TopCustomers(s.Customers, reportTopN),
		StockLevels:    StockLevels(s.Inventory, reportTopN),
		MonthlyRevenue: MonthlyRevenue(s.Invoices, loc),
	}
}
