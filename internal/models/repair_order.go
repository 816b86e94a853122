package models

import "time"

type RepairOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	AppointmentID *uint `gorm:"index" json:"appointment_id"`

	VehicleInfo   string   `gorm:"size:150" json:"vehicle_info"`
	Description   string   `gorm:"type:text" json:"description"`
	Status        string   `gorm:"size:20;default:'pending'" json:"status"`
	EstimatedCost float64  `gorm:"default:0" json:"estimated_cost"`
	ActualCost    *float64 `json:"actual_cost"`

	StartDate      *time.Time `json:"start_date"`
	CompletionDate *time.Time `json:"completion_date"`

	Notes string     `gorm:"type:text" json:"notes"`
	Items []LineItem `gorm:"type:text;serializer:json" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
