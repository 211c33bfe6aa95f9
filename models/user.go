package models

import (
	"cleanplan-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultThemeColor = "210 40% 98%"

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	ThemeColor string    `gorm:"type:varchar(50);not null;default:'210 40% 98%'" json:"theme_color"`
	Phone      string    `json:"phone,omitempty"`

	Apartments []Apartment `gorm:"foreignKey:UserID" json:"-"`
	Employees  []Employee  `gorm:"foreignKey:UserID" json:"-"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.ThemeColor == "" {
		u.ThemeColor = DefaultThemeColor
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// SafeUser is the only user shape ever returned to clients; the stored
// credential is not part of it.
type SafeUser struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	ThemeColor string    `json:"theme_color"`
}

func (u *User) Safe() SafeUser {
	return SafeUser{ID: u.ID, Email: u.Email, ThemeColor: u.ThemeColor}
}
