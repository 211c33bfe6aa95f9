package storage

import (
	"cleanplan-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (s *Storage) CreateUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetSafeUser(userID uuid.UUID) (models.SafeUser, error) {
	var user models.User
	if err := s.db.Select("id", "email", "theme_color").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return models.SafeUser{}, err
	}
	return user.Safe(), nil
}

// ListUsers returns every account; the reminder scheduler walks this to
// process each tenant in turn.
func (s *Storage) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserTheme stores the new theme preference and returns the safe
// projection of the updated user. gorm.ErrRecordNotFound when no row matched.
func (s *Storage) UpdateUserTheme(userID uuid.UUID, themeColor string) (models.SafeUser, error) {
	res := s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("theme_color", themeColor)
	if res.Error != nil {
		return models.SafeUser{}, res.Error
	}
	if res.RowsAffected == 0 {
		return models.SafeUser{}, gorm.ErrRecordNotFound
	}
	return s.GetSafeUser(userID)
}

func (s *Storage) CreateReminderLog(log *models.ReminderLog) error {
	return s.db.Create(log).Error
}
