package models

import (
	"time"
)

// TeamMember is a person shown on the about page
type TeamMember struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Position     string    `gorm:"size:255" json:"position,omitempty"`
	Bio          string    `gorm:"type:text" json:"bio,omitempty"`
	PhotoURL     string    `gorm:"size:500" json:"photo_url,omitempty"`
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for TeamMember model
func (TeamMember) TableName() string {
	return "team_members"
}

// Slide is one entry of the home-page hero carousel
type Slide struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:500;not null" json:"title"`
	Subtitle     string    `gorm:"size:500" json:"subtitle,omitempty"`
	ImageURL     string    `gorm:"size:500" json:"image_url,omitempty"`
	LinkURL      string    `gorm:"size:500" json:"link_url,omitempty"`
	DisplayOrder int       `gorm:"default:0;index" json:"display_order"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for Slide model
func (Slide) TableName() string {
	return "slides"
}

// AnnouncementBar is the dismissible banner above the home-page hero
type AnnouncementBar struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Message   string    `gorm:"size:500;not null" json:"message"`
	LinkURL   string    `gorm:"size:500" json:"link_url,omitempty"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for AnnouncementBar model
func (AnnouncementBar) TableName() string {
	return "announcement_bars"
}
