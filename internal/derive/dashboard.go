package derive

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/taller-admin/internal/domain/repairorder"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
)

type Dashboard struct {
	TodayAppointments    int                     `json:"today_appointments"`
	PendingAppointments  int                     `json:"pending_appointments"`
	ActiveOrders         int                     `json:"active_orders"`
	LowStockItems        int                     `json:"low_stock_items"`
	TodayRevenue         float64                 `json:"today_revenue"`
	UpcomingAppointments []dto.AppointmentView   `json:"upcoming_appointments"`
	LowStock             []dto.InventoryItemView `json:"low_stock"`
}

const upcomingLimit = 3

// BuildDashboard computes the daily summary; "today" is the calendar day of
// now in now's location. Upcoming appointments run from now to the end of
// tomorrow.
func BuildDashboard(s Snapshot, now time.Time) Dashboard {
	today := dayStart(now)
	tomorrow := today.AddDate(0, 0, 1)
	afterTomorrow := today.AddDate(0, 0, 2)

	d := Dashboard{
		UpcomingAppointments: []dto.AppointmentView{},
		LowStock:             []dto.InventoryItemView{},
	}

	for _, a := range s.Appointments {
		at := a.AppointmentDate.In(now.Location())
		st := appointment.Status(a.Status)
		if inDay(at, today, tomorrow) {
			d.TodayAppointments++
		}
		if st == appointment.StatusPending {
			d.PendingAppointments++
		}
		if st.Active() && !at.Before(now) && at.Before(afterTomorrow) {
			d.UpcomingAppointments = append(d.UpcomingAppointments, a)
		}
	}
	sort.SliceStable(d.UpcomingAppointments, func(i, j int) bool {
		return d.UpcomingAppointments[i].AppointmentDate.Before(d.UpcomingAppointments[j].AppointmentDate)
	})
	if len(d.UpcomingAppointments) > upcomingLimit {
		d.UpcomingAppointments = d.UpcomingAppointments[:upcomingLimit]
	}

	for _, o := range s.RepairOrders {
		if repairorder.Status(o.Status).Active() {
			d.ActiveOrders++
		}
	}

	for _, it := range s.Inventory {
		if IsLowStock(it.InventoryItem) {
			d.LowStockItems++
			d.LowStock = append(d.LowStock, it)
		}
	}

	var paidToday []float64
	for _, inv := range s.Invoices {
		if invoice.Status(inv.Status) == invoice.StatusPaid && inDay(inv.IssueDate.In(now.Location()), today, tomorrow) {
			paidToday = append(paidToday, inv.Total)
		}
	}
	d.TodayRevenue = Money(sumMoney(paidToday))

	return d
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func inDay(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}
