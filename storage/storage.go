// Package storage is the tenant-scoped data access layer. Every query filters
// by the acting user's id in the same statement as the fetch/update/delete, so
// a row owned by another user behaves exactly like a row that does not exist.
package storage

import (
	"cleanplan-backend/models"

	"gorm.io/gorm"
)

// Storage wraps the database handle. It is constructed once at process start
// and passed to every consumer; there is no package-level instance.
type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Apartment{},
		&models.Employee{},
		&models.Assignment{},
		&models.ReminderLog{},
	)
}
