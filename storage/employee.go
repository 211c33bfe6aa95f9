package storage

import (
	"cleanplan-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListEmployeeOptions struct {
	Search string // substring match on first or last name
}

func (s *Storage) ListEmployees(userID uuid.UUID, opts ListEmployeeOptions) ([]models.Employee, error) {
	q := s.db.Preload("Apartments").Where("user_id = ?", userID)

	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		q = q.Where("first_name LIKE ? OR last_name LIKE ?", like, like)
	}

	var employees []models.Employee
	if err := q.Order("last_name DESC, first_name DESC").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *Storage) GetEmployee(userID, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := s.db.Preload("Apartments").
		Where("user_id = ? AND id = ?", userID, id).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (s *Storage) CreateEmployee(userID uuid.UUID, employee *models.Employee) error {
	employee.UserID = userID
	return s.db.Create(employee).Error
}

// DeleteEmployee removes the employee and every assignment referencing them.
// A second delete of the same id is a no-op.
func (s *Storage) DeleteEmployee(userID, id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id = ?", userID, id).Delete(&models.Employee{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return tx.Where("employee_id = ?", id).Delete(&models.Assignment{}).Error
	})
}
