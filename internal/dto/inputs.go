package dto

import (
	"time"

	"github.com/BruksfildServices01/taller-admin/internal/models"
)

// ======================================================
// Write inputs
//
// Inputs list source-of-truth fields only. Decoding a view's JSON into
// an input or a patch silently drops customer_name, total_spent and the
// other computed fields.
// ======================================================

// -------- Customer --------

type CustomerInput struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}

func (in CustomerInput) Model() models.Customer {
	return models.Customer{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		City:       in.City,
		PostalCode: in.PostalCode,
		Notes:      in.Notes,
	}
}

type CustomerPatch struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

func (p CustomerPatch) Apply(c *models.Customer) {
	setIf(&c.Name, p.Name)
	setIf(&c.Email, p.Email)
	setIf(&c.Phone, p.Phone)
	setIf(&c.Address, p.Address)
	setIf(&c.City, p.City)
	setIf(&c.PostalCode, p.PostalCode)
	setIf(&c.Notes, p.Notes)
}

func (p CustomerPatch) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "name", p.Name)
	putIf(cols, "email", p.Email)
	putIf(cols, "phone", p.Phone)
	putIf(cols, "address", p.Address)
	putIf(cols, "city", p.City)
	putIf(cols, "postal_code", p.PostalCode)
	putIf(cols, "notes", p.Notes)
	return cols
}

// -------- Appointment --------

type AppointmentInput struct {
	CustomerID        uint      `json:"customer_id" binding:"required"`
	AppointmentDate   time.Time `json:"appointment_date" binding:"required"`
	Status            string    `json:"status"`
	Description       string    `json:"description"`
	EstimatedDuration int       `json:"estimated_duration"`
	Notes             string    `json:"notes"`
}

// Model fills the defaults: pending status and a 60 minute slot.
func (in AppointmentInput) Model() models.Appointment {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	duration := in.EstimatedDuration
	if duration == 0 {
		duration = 60
	}
	return models.Appointment{
		CustomerID:        in.CustomerID,
		AppointmentDate:   in.AppointmentDate,
		Status:            status,
		Description:       in.Description,
		EstimatedDuration: duration,
		Notes:             in.Notes,
	}
}

type AppointmentPatch struct {
	CustomerID        *uint      `json:"customer_id,omitempty"`
	AppointmentDate   *time.Time `json:"appointment_date,omitempty"`
	Status            *string    `json:"status,omitempty"`
	Description       *string    `json:"description,omitempty"`
	EstimatedDuration *int       `json:"estimated_duration,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
}

func (p AppointmentPatch) Apply(a *models.Appointment) {
	setIf(&a.CustomerID, p.CustomerID)
	setIf(&a.AppointmentDate, p.AppointmentDate)
	setIf(&a.Status, p.Status)
	setIf(&a.Description, p.Description)
	setIf(&a.EstimatedDuration, p.EstimatedDuration)
	setIf(&a.Notes, p.Notes)
}

func (p AppointmentPatch) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "customer_id", p.CustomerID)
	putIf(cols, "appointment_date", p.AppointmentDate)
	putIf(cols, "status", p.Status)
	putIf(cols, "description", p.Description)
	putIf(cols, "estimated_duration", p.EstimatedDuration)
	putIf(cols, "notes", p.Notes)
	return cols
}

// -------- Inventory --------

type InventoryItemInput struct {
	Name          string     `json:"name" binding:"required"`
	SKU           string     `json:"sku" binding:"required"`
	Category      string     `json:"category" binding:"required"`
	Quantity      int        `json:"quantity"`
	MinQuantity   int        `json:"min_quantity"`
	UnitPrice     float64    `json:"unit_price"`
	Supplier      string     `json:"supplier"`
	Description   string     `json:"description"`
	LastRestocked *time.Time `json:"last_restocked"`
}

// DefaultMinQuantity is the reorder threshold of an item created without one.
const DefaultMinQuantity = 5

func (in InventoryItemInput) Model() models.InventoryItem {
	minQuantity := in.MinQuantity
	if minQuantity == 0 {
		minQuantity = DefaultMinQuantity
	}
	return models.InventoryItem{
		Name:          in.Name,
		SKU:           in.SKU,
		Category:      in.Category,
		Quantity:      in.Quantity,
		MinQuantity:   minQuantity,
		UnitPrice:     in.UnitPrice,
		Supplier:      in.Supplier,
		Description:   in.Description,
		LastRestocked: in.LastRestocked,
	}
}

type InventoryItemPatch struct {
	Name          *string    `json:"name,omitempty"`
	SKU           *string    `json:"sku,omitempty"`
	Category      *string    `json:"category,omitempty"`
	Quantity      *int       `json:"quantity,omitempty"`
	MinQuantity   *int       `json:"min_quantity,omitempty"`
	UnitPrice     *float64   `json:"unit_price,omitempty"`
	Supplier      *string    `json:"supplier,omitempty"`
	Description   *string    `json:"description,omitempty"`
	LastRestocked *time.Time `json:"last_restocked,omitempty"`
}

func (p InventoryItemPatch) Apply(i *models.InventoryItem) {
	setIf(&i.Name, p.Name)
	setIf(&i.SKU, p.SKU)
	setIf(&i.Category, p.Category)
	setIf(&i.Quantity, p.Quantity)
	setIf(&i.MinQuantity, p.MinQuantity)
	setIf(&i.UnitPrice, p.UnitPrice)
	setIf(&i.Supplier, p.Supplier)
	setIf(&i.Description, p.Description)
	if p.LastRestocked != nil {
		t := *p.LastRestocked
		i.LastRestocked = &t
	}
}

func (p InventoryItemPatch) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "name", p.Name)
	putIf(cols, "sku", p.SKU)
	putIf(cols, "category", p.Category)
	putIf(cols, "quantity", p.Quantity)
	putIf(cols, "min_quantity", p.MinQuantity)
	putIf(cols, "unit_price", p.UnitPrice)
	putIf(cols, "supplier", p.Supplier)
	putIf(cols, "description", p.Description)
	putIf(cols, "last_restocked", p.LastRestocked)
	return cols
}

// -------- Repair order --------

type RepairOrderInput struct {
	CustomerID     uint              `json:"customer_id" binding:"required"`
	AppointmentID  *uint             `json:"appointment_id"`
	VehicleInfo    string            `json:"vehicle_info"`
	Description    string            `json:"description"`
	Status         string            `json:"status"`
	EstimatedCost  float64           `json:"estimated_cost"`
	ActualCost     *float64          `json:"actual_cost"`
	StartDate      *time.Time        `json:"start_date"`
	CompletionDate *time.Time        `json:"completion_date"`
	Notes          string            `json:"notes"`
	Items          []models.LineItem `json:"items"`
}

func (in RepairOrderInput) Model() models.RepairOrder {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	return models.RepairOrder{
		CustomerID:     in.CustomerID,
		AppointmentID:  in.AppointmentID,
		VehicleInfo:    in.VehicleInfo,
		Description:    in.Description,
		Status:         status,
		EstimatedCost:  in.EstimatedCost,
		ActualCost:     in.ActualCost,
		StartDate:      in.StartDate,
		CompletionDate: in.CompletionDate,
		Notes:          in.Notes,
		Items:          cloneItems(in.Items),
	}
}

type RepairOrderPatch struct {
	CustomerID     *uint              `json:"customer_id,omitempty"`
	AppointmentID  *uint              `json:"appointment_id,omitempty"`
	VehicleInfo    *string            `json:"vehicle_info,omitempty"`
	Description    *string            `json:"description,omitempty"`
	Status         *string            `json:"status,omitempty"`
	EstimatedCost  *float64           `json:"estimated_cost,omitempty"`
	ActualCost     *float64           `json:"actual_cost,omitempty"`
	StartDate      *time.Time         `json:"start_date,omitempty"`
	CompletionDate *time.Time         `json:"completion_date,omitempty"`
	Notes          *string            `json:"notes,omitempty"`
	Items          *[]models.LineItem `json:"items,omitempty"`
}

func (p RepairOrderPatch) Apply(o *models.RepairOrder) {
	setIf(&o.CustomerID, p.CustomerID)
	setIf(&o.VehicleInfo, p.VehicleInfo)
	setIf(&o.Description, p.Description)
	setIf(&o.Status, p.Status)
	setIf(&o.EstimatedCost, p.EstimatedCost)
	setIf(&o.Notes, p.Notes)
	if p.AppointmentID != nil {
		id := *p.AppointmentID
		o.AppointmentID = &id
	}
	if p.ActualCost != nil {
		v := *p.ActualCost
		o.ActualCost = &v
	}
	if p.StartDate != nil {
		t := *p.StartDate
		o.StartDate = &t
	}
	if p.CompletionDate != nil {
		t := *p.CompletionDate
		o.CompletionDate = &t
	}
	if p.Items != nil {
		o.Items = cloneItems(*p.Items)
	}
}

func (p RepairOrderPatch) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "customer_id", p.CustomerID)
	putIf(cols, "appointment_id", p.AppointmentID)
	putIf(cols, "vehicle_info", p.VehicleInfo)
	putIf(cols, "description", p.Description)
	putIf(cols, "status", p.Status)
	putIf(cols, "estimated_cost", p.EstimatedCost)
	putIf(cols, "actual_cost", p.ActualCost)
	putIf(cols, "start_date", p.StartDate)
	putIf(cols, "completion_date", p.CompletionDate)
	putIf(cols, "notes", p.Notes)
	putIf(cols, "items", p.Items)
	return cols
}

// -------- Invoice --------

// InvoiceInput may omit the number; the gateway then assigns the next one.
type InvoiceInput struct {
	InvoiceNumber string            `json:"invoice_number"`
	CustomerID    uint              `json:"customer_id" binding:"required"`
	RepairOrderID *uint             `json:"repair_order_id"`
	IssueDate     time.Time         `json:"issue_date"`
	DueDate       time.Time         `json:"due_date"`
	Status        string            `json:"status"`
	Items         []models.LineItem `json:"items"`
	Notes         string            `json:"notes"`
}

func (in InvoiceInput) Model() models.Invoice {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	return models.Invoice{
		InvoiceNumber: in.InvoiceNumber,
		CustomerID:    in.CustomerID,
		RepairOrderID: in.RepairOrderID,
		IssueDate:     in.IssueDate,
		DueDate:       in.DueDate,
		Status:        status,
		Items:         cloneItems(in.Items),
		Notes:         in.Notes,
	}
}

type InvoicePatch struct {
	InvoiceNumber *string            `json:"invoice_number,omitempty"`
	CustomerID    *uint              `json:"customer_id,omitempty"`
	RepairOrderID *uint              `json:"repair_order_id,omitempty"`
	IssueDate     *time.Time         `json:"issue_date,omitempty"`
	DueDate       *time.Time         `json:"due_date,omitempty"`
	Status        *string            `json:"status,omitempty"`
	Items         *[]models.LineItem `json:"items,omitempty"`
	Notes         *string            `json:"notes,omitempty"`
}

func (p InvoicePatch) Apply(i *models.Invoice) {
	setIf(&i.InvoiceNumber, p.InvoiceNumber)
	setIf(&i.CustomerID, p.CustomerID)
	setIf(&i.IssueDate, p.IssueDate)
	setIf(&i.DueDate, p.DueDate)
	setIf(&i.Status, p.Status)
	setIf(&i.Notes, p.Notes)
	if p.RepairOrderID != nil {
		id := *p.RepairOrderID
		i.RepairOrderID = &id
	}
	if p.Items != nil {
		i.Items = cloneItems(*p.Items)
	}
}

func (p InvoicePatch) Columns() map[string]any {
	cols := map[string]any{}
	putIf(cols, "invoice_number", p.InvoiceNumber)
	putIf(cols, "customer_id", p.CustomerID)
	putIf(cols, "repair_order_id", p.RepairOrderID)
	putIf(cols, "issue_date", p.IssueDate)
	putIf(cols, "due_date", p.DueDate)
	putIf(cols, "status", p.Status)
	putIf(cols, "items", p.Items)
	putIf(cols, "notes", p.Notes)
	return cols
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// putIf records the column only when the patch sets it.
func putIf[T any](cols map[string]any, column string, v *T) {
	if v != nil {
		cols[column] = *v
	}
}

func cloneItems(items []models.LineItem) []models.LineItem {
	out := make([]models.LineItem, len(items))
	copy(out, items)
	return out
}
