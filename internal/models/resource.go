package models

import (
	"time"
)

// ResourceType is the lookup table behind a resource's category
type ResourceType struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}

// TableName specifies the table name for ResourceType model
func (ResourceType) TableName() string {
	return "resource_types"
}

// Resource is a blog article or downloadable asset. It carries either inline
// HTML content or an external article link, never both.
type Resource struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Title         string        `gorm:"size:500;not null" json:"title"`
	TypeID        *uint         `gorm:"index" json:"type_id,omitempty"`
	Type          *ResourceType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
	Description   string        `gorm:"type:text" json:"description,omitempty"`
	Content       string        `gorm:"type:text" json:"content,omitempty"`
	ArticleLink   string        `gorm:"size:500" json:"article_link,omitempty"`
	IsPublished   bool          `gorm:"default:false;index" json:"is_published"`
	PublishedAt   *string       `gorm:"size:10" json:"published_at,omitempty"` // YYYY-MM-DD, nil while unpublished
	CoverImageURL string        `gorm:"size:500" json:"cover_image_url,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// TableName specifies the table name for Resource model
func (Resource) TableName() string {
	return "resources"
}

// FeaturedResource marks the single resource highlighted on the home page.
// Application logic keeps this table at no more than one row.
type FeaturedResource struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ResourceID uint      `gorm:"not null;uniqueIndex" json:"resource_id"`
	Resource   *Resource `gorm:"foreignKey:ResourceID" json:"resource,omitempty"`
}

// TableName specifies the table name for FeaturedResource model
func (FeaturedResource) TableName() string {
	return "featured_resources"
}
