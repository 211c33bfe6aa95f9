package storage

import (
	"strings"

	"cleanplan-backend/models"

	"github.com/google/uuid"
)

// Statistics is the per-user aggregate summary.
type Statistics struct {
	TotalOrders  int             `json:"totalOrders"`
	TopEmployees []EmployeeCount `json:"topEmployees"`
	BusiestDays  []DayCount      `json:"busiestDays"`
}

type EmployeeCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// GetStatistics computes the total apartment count, the top 3 employees by
// number of assigned apartments and the top 3 cleaning dates by apartment
// count. Equal counts are broken by last then first name for employees and by
// earliest date for days.
func (s *Storage) GetStatistics(userID uuid.UUID) (*Statistics, error) {
	stats := &Statistics{
		TopEmployees: []EmployeeCount{},
		BusiestDays:  []DayCount{},
	}

	var total int64
	if err := s.db.Model(&models.Apartment{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, err
	}
	stats.TotalOrders = int(total)

	type employeeRow struct {
		FirstName  string
		LastName   string
		OrderCount int
	}
	var employeeRows []employeeRow
	if err := s.db.Table("assignments").
		Select("employees.first_name, employees.last_name, COUNT(assignments.apartment_id) AS order_count").
		Joins("JOIN employees ON employees.id = assignments.employee_id").
		Where("employees.user_id = ?", userID).
		Group("assignments.employee_id, employees.first_name, employees.last_name").
		Order("order_count DESC, employees.last_name ASC, employees.first_name ASC").
		Limit(3).
		Scan(&employeeRows).Error; err != nil {
		return nil, err
	}
	for _, row := range employeeRows {
		stats.TopEmployees = append(stats.TopEmployees, EmployeeCount{
			Name:  strings.TrimSpace(row.FirstName + " " + row.LastName),
			Count: row.OrderCount,
		})
	}

	type dayRow struct {
		Date       string
		OrderCount int
	}
	var dayRows []dayRow
	if err := s.db.Model(&models.Apartment{}).
		Select("cleaning_date AS date, COUNT(*) AS order_count").
		Where("user_id = ?", userID).
		Group("cleaning_date").
		Order("order_count DESC, cleaning_date ASC").
		Limit(3).
		Scan(&dayRows).Error; err != nil {
		return nil, err
	}
	for _, row := range dayRows {
		stats.BusiestDays = append(stats.BusiestDays, DayCount{Date: row.Date, Count: row.OrderCount})
	}

	return stats, nil
}
