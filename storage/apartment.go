package storage

import (
	"time"

	"cleanplan-backend/models"
	"cleanplan-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListApartmentOptions struct {
	SortBy string // "name" sorts by name, anything else by cleaning date
	Search string // substring match on name or notes
}

func (s *Storage) ListApartments(userID uuid.UUID, opts ListApartmentOptions) ([]models.Apartment, error) {
	q := s.db.Preload("Employees").Where("user_id = ?", userID)

	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("name LIKE ? OR notes LIKE ?", like, like)
	}

	if opts.SortBy == "name" {
		q = q.Order("name DESC")
	} else {
		q = q.Order("cleaning_date DESC")
	}

	var apartments []models.Apartment
	if err := q.Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

func (s *Storage) GetApartment(userID, id uuid.UUID) (*models.Apartment, error) {
	var apartment models.Apartment
	if err := s.db.Preload("Employees").
		Where("user_id = ? AND id = ?", userID, id).
		First(&apartment).Error; err != nil {
		return nil, err
	}
	return &apartment, nil
}

// CreateApartment inserts the apartment and one assignment per employee id in
// a single transaction; if any insert fails nothing persists.
func (s *Storage) CreateApartment(userID uuid.UUID, apartment *models.Apartment, employeeIDs []uuid.UUID) error {
	apartment.UserID = userID
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(apartment).Error; err != nil {
			return err
		}
		for _, employeeID := range employeeIDs {
			assignment := models.Assignment{ApartmentID: apartment.ID, EmployeeID: employeeID}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateApartment rewrites the apartment row and replaces its assignment set
// wholesale: all existing assignments are deleted and the new set inserted.
// When no row matches the owner+id pair the whole transaction is rolled back
// and gorm.ErrRecordNotFound returned.
func (s *Storage) UpdateApartment(userID, id uuid.UUID, data *models.Apartment, employeeIDs []uuid.UUID) (*models.Apartment, error) {
	var updated models.Apartment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Apartment{}).
			Where("user_id = ? AND id = ?", userID, id).
			Updates(map[string]interface{}{
				"name":           data.Name,
				"cleaning_date":  data.CleaningDate,
				"start_time":     data.StartTime,
				"status":         data.Status,
				"payment_status": data.PaymentStatus,
				"notes":          data.Notes,
				"price":          data.Price,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("apartment_id = ?", id).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		for _, employeeID := range employeeIDs {
			assignment := models.Assignment{ApartmentID: id, EmployeeID: employeeID}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		}

		return tx.Preload("Employees").
			Where("user_id = ? AND id = ?", userID, id).
			First(&updated).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteApartment removes the apartment and its assignments. Deleting an
// apartment that is already gone (or owned by someone else) is a no-op.
func (s *Storage) DeleteApartment(userID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Apartment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Where("apartment_id = ?", id).Delete(&models.Assignment{}).Error
	})
}

func (s *Storage) ListApartmentsByMonth(userID uuid.UUID, year int, month time.Month) ([]models.Apartment, error) {
	first, last := utils.MonthRange(year, month)

	var apartments []models.Apartment
	if err := s.db.Preload("Employees").
		Where("user_id = ? AND cleaning_date BETWEEN ? AND ?", userID, first, last).
		Order("cleaning_date DESC").
		Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}

func (s *Storage) ListApartmentsByDate(userID uuid.UUID, year int, month time.Month, day int) ([]models.Apartment, error) {
	date := utils.FormatDate(year, month, day)

	var apartments []models.Apartment
	if err := s.db.Preload("Employees").
		Where("user_id = ? AND cleaning_date = ?", userID, date).
		Order("start_time DESC").
		Find(&apartments).Error; err != nil {
		return nil, err
	}
	return apartments, nil
}
