package models

import "time"

// Invoice stores only its line items; subtotal, tax and total are derived.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceNumber string `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	RepairOrderID *uint `gorm:"index" json:"repair_order_id"`

	IssueDate time.Time `gorm:"not null;index" json:"issue_date"`
	DueDate   time.Time `json:"due_date"`
	Status    string    `gorm:"size:20;default:'pending'" json:"status"`

	Items []LineItem `gorm:"type:text;serializer:json" json:"items"`
	Notes string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
