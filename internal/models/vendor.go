package models

import (
	"time"
)

// Vendor is a security vendor listed in the public vendor directory.
// Type holds a comma-joined list of category labels, matching the data as it
// was entered in the source system; use services.SplitVendorTypes to read it.
type Vendor struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	LogoURL     string    `gorm:"size:500" json:"logo_url,omitempty"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	DiagramURL  string    `gorm:"size:500" json:"diagram_url,omitempty"`
	Link        string    `gorm:"size:500" json:"link,omitempty"`
	Type        string    `gorm:"size:500" json:"type,omitempty"`
	Content     string    `gorm:"type:text" json:"content,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
