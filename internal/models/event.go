package models

import (
	"time"
)

// Event represents a company event shown on the public events page
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:500;not null" json:"title"`
	EventDate   string    `gorm:"size:10;not null;index" json:"event_date"` // YYYY-MM-DD, no time-of-day
	Location    string    `gorm:"size:255" json:"location,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Link        string    `gorm:"size:500" json:"link,omitempty"`
	Video       string    `gorm:"size:500" json:"video,omitempty"`
	ImageURL    string    `gorm:"size:500" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Event model
func (Event) TableName() string {
	return "events"
}

// FeaturedEvent marks the single event highlighted on the home page.
// Application logic keeps this table at no more than one row.
type FeaturedEvent struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	EventID uint   `gorm:"not null;uniqueIndex" json:"event_id"`
	Event   *Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// TableName specifies the table name for FeaturedEvent model
func (FeaturedEvent) TableName() string {
	return "featured_events"
}
