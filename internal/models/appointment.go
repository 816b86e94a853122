package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	AppointmentDate   time.Time `gorm:"not null;index" json:"appointment_date"`
	Status            string    `gorm:"size:20;default:'pending'" json:"status"`
	Description       string    `gorm:"type:text" json:"description"`
	EstimatedDuration int       `gorm:"default:60" json:"estimated_duration"`
	Notes             string    `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
