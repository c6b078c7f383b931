package models

import (
	"time"
)

// AdminUser can sign in to the content-management panel
type AdminUser struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         string     `gorm:"size:255" json:"name,omitempty"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName specifies the table name for AdminUser model
func (AdminUser) TableName() string {
	return "admin_users"
}
