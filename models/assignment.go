package models

import (
	"github.com/google/uuid"
)

// Assignment links an employee to an apartment's cleaning job. The pair is
// the table's identity, so the same employee can never be assigned to the
// same apartment twice.
type Assignment struct {
	ApartmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"apartment_id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"employee_id"`
}
