package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cleaning job status
const (
	StatusToDo       = "to_do"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Payment status
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

type Apartment struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name          string   `gorm:"not null" json:"name"`
	CleaningDate  string   `gorm:"type:varchar(10);not null" json:"cleaning_date"` // YYYY-MM-DD
	StartTime     *string  `gorm:"type:varchar(5)" json:"start_time"`              // HH:MM
	Status        string   `gorm:"type:varchar(20);not null;default:'to_do'" json:"status"`
	PaymentStatus string   `gorm:"type:varchar(20);not null;default:'unpaid'" json:"payment_status"`
	Notes         *string  `json:"notes"`
	Price         *float64 `gorm:"type:decimal(10,2)" json:"price"`

	Employees []Employee `gorm:"many2many:assignments;" json:"employees,omitempty"`
}

func (a *Apartment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = StatusToDo
	}
	if a.PaymentStatus == "" {
		a.PaymentStatus = PaymentUnpaid
	}
	return
}
