package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User is een admin-account voor de back-office. De publieke site is
// niet geauthenticeerd.
type User struct {
	gorm.Model
	Email       string     `gorm:"uniqueIndex;not null"`
	Password    string     `gorm:"not null" json:"-"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func (u *User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) GetPublicProfile() map[string]interface{} {
	return map[string]interface{}{
		"id":            u.ID,
		"email":         u.Email,
		"full_name":     u.GetFullName(),
		"last_login_at": u.LastLoginAt,
	}
}
