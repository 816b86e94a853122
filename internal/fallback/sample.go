package fallback

import (
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

func day(m time.Month, d, h int) time.Time {
	return time.Date(2026, m, d, h, 0, 0, 0, time.UTC)
}

func u(v uint) *uint { return &v }

// Sample is the dataset shown while the store is unreachable. Every call
// returns fresh slices.
func Sample() memory.Dataset {
	restocked := day(time.January, 20, 10)
	started := day(time.February, 3, 9)
	finished := day(time.February, 4, 17)
	actual := 185.5

	return memory.Dataset{
		Customers: []models.Customer{
			{ID: 1, Name: "Juan Pérez", Email: "juan.perez@example.com", Phone: "612345678",
				Address: "Calle Mayor 12", City: "Madrid", PostalCode: "28013", CreatedAt: day(time.January, 5, 9)},
			{ID: 2, Name: "María García", Email: "maria.garcia@example.com", Phone: "623456789",
				Address: "Avenida de la Constitución 4", City: "Sevilla", PostalCode: "41001", CreatedAt: day(time.January, 12, 11)},
			{ID: 3, Name: "Carlos López", Email: "carlos.lopez@example.com", Phone: "634567890",
				City: "Valencia", PostalCode: "46002", Notes: "Prefiere contacto por teléfono", CreatedAt: day(time.January, 19, 16)},
			{ID: 4, Name: "Lucía Fernández", Email: "lucia.fernandez@example.com", Phone: "645678901",
				City: "Bilbao", PostalCode: "48001", CreatedAt: day(time.February, 2, 10)},
		},
		Appointments: []models.Appointment{
			{ID: 1, CustomerID: 1, AppointmentDate: day(time.February, 3, 9), Status: "completed",
				Description: "Cambio de aceite y filtro", EstimatedDuration: 60},
			{ID: 2, CustomerID: 2, AppointmentDate: day(time.February, 10, 11), Status: "completed",
				Description: "Revisión de frenos", EstimatedDuration: 90},
			{ID: 3, CustomerID: 3, AppointmentDate: day(time.March, 2, 10), Status: "confirmed",
				Description: "Diagnóstico de ruido en el motor", EstimatedDuration: 120},
			{ID: 4, CustomerID: 4, AppointmentDate: day(time.March, 3, 12), Status: "pending",
				Description: "Rotación de neumáticos", EstimatedDuration: 45},
			{ID: 5, CustomerID: 1, AppointmentDate: day(time.March, 5, 16), Status: "cancelled",
				Description: "Cambio de escobillas", EstimatedDuration: 30},
		},
		Inventory: []models.InventoryItem{
			{ID: 1, Name: "Aceite 5W-30 (5L)", SKU: "ACE-5W30-5L", Category: "Fluidos", Quantity: 24, MinQuantity: 10,
				UnitPrice: 38.9, Supplier: "Lubricantes Ibéricos", LastRestocked: &restocked},
			{ID: 2, Name: "Filtro de aceite", SKU: "FLT-ACE-001", Category: "Filtros", Quantity: 4, MinQuantity: 8,
				UnitPrice: 9.5, Supplier: "Recambios Norte"},
			{ID: 3, Name: "Pastillas de freno delanteras", SKU: "FRN-PST-DEL", Category: "Frenos", Quantity: 6, MinQuantity: 4,
				UnitPrice: 45, Supplier: "Frenos Levante"},
			{ID: 4, Name: "Batería 60Ah", SKU: "ELE-BAT-60", Category: "Eléctrico", Quantity: 2, MinQuantity: 3,
				UnitPrice: 95, Supplier: "Recambios Norte"},
			{ID: 5, Name: "Correa de distribución", SKU: "COR-DIS-010", Category: "Correas", Quantity: 7, MinQuantity: 2,
				UnitPrice: 62.75, Supplier: "Motor Parts"},
			{ID: 6, Name: "Bujía iridio", SKU: "ENC-BUJ-IR", Category: "Encendido", Quantity: 16, MinQuantity: 8,
				UnitPrice: 12.4, Supplier: "Motor Parts"},
		},
		RepairOrders: []models.RepairOrder{
			{ID: 1, CustomerID: 1, AppointmentID: u(1), VehicleInfo: "Seat León 2018 - 1234ABC",
				Description: "Cambio de aceite y filtro", Status: "completed", EstimatedCost: 60, ActualCost: &actual,
				StartDate: &started, CompletionDate: &finished, CreatedAt: day(time.February, 3, 9),
				Items: []models.LineItem{
					{Description: "Cambio de aceite 5W-30", Quantity: 1, UnitPrice: 38.9},
					{Description: "Filtro de aceite", Quantity: 1, UnitPrice: 9.5},
					{Description: "Mano de obra", Quantity: 1, UnitPrice: 30},
				}},
			{ID: 2, CustomerID: 2, AppointmentID: u(2), VehicleInfo: "Renault Clio 2020 - 5678DEF",
				Description: "Sustitución de pastillas de freno", Status: "completed", EstimatedCost: 150,
				CreatedAt: day(time.February, 10, 11),
				Items: []models.LineItem{
					{Description: "Pastillas de freno delanteras", Quantity: 1, UnitPrice: 45},
					{Description: "Mano de obra frenos", Quantity: 2, UnitPrice: 35},
				}},
			{ID: 3, CustomerID: 3, AppointmentID: u(3), VehicleInfo: "Toyota Corolla 2016 - 9012GHI",
				Description: "Diagnóstico de ruido en el motor", Status: "in_progress", EstimatedCost: 80,
				CreatedAt: day(time.March, 2, 10),
				Items: []models.LineItem{
					{Description: "Diagnóstico electrónico", Quantity: 1, UnitPrice: 50},
				}},
		},
		Invoices: []models.Invoice{
			{ID: 1, InvoiceNumber: "FAC-2026-0001", CustomerID: 1, RepairOrderID: u(1),
				IssueDate: day(time.February, 4, 18), DueDate: day(time.March, 6, 18), Status: "paid",
				CreatedAt: day(time.February, 4, 18),
				Items: []models.LineItem{
					{Description: "Cambio de aceite 5W-30", Quantity: 1, UnitPrice: 38.9},
					{Description: "Filtro de aceite", Quantity: 1, UnitPrice: 9.5},
					{Description: "Mano de obra", Quantity: 1, UnitPrice: 30},
				}},
			{ID: 2, InvoiceNumber: "FAC-2026-0002", CustomerID: 2, RepairOrderID: u(2),
				IssueDate: day(time.February, 11, 12), DueDate: day(time.March, 13, 12), Status: "pending",
				CreatedAt: day(time.February, 11, 12),
				Items: []models.LineItem{
					{Description: "Pastillas de freno delanteras", Quantity: 1, UnitPrice: 45},
					{Description: "Mano de obra frenos", Quantity: 2, UnitPrice: 35},
				}},
			{ID: 3, InvoiceNumber: "FAC-2026-0003", CustomerID: 4,
				IssueDate: day(time.January, 28, 10), DueDate: day(time.February, 27, 10), Status: "overdue",
				CreatedAt: day(time.January, 28, 10),
				Items: []models.LineItem{
					{Description: "Neumático 205/55 R16", Quantity: 2, UnitPrice: 72},
					{Description: "Alineación", Quantity: 1, UnitPrice: 25},
				}},
		},
	}
}
