package repository

import (
	"context"
	"fmt"

	"netpoleon-site/internal/models"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListEvents retrieves all events, newest event date first
func (r *Repository) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := r.db.WithContext(ctx).Order("event_date DESC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID retrieves an event by ID
func (r *Repository) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// CreateEvent creates a new event
func (r *Repository) CreateEvent(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// UpdateEvent applies a partial update; columns absent from updates keep
// their stored values
func (r *Repository) UpdateEvent(ctx context.Context, id uint, updates map[string]interface{}) (*models.Event, error) {
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetEventByID(ctx, id)
}

// DeleteEvent removes an event and its featured row, if any
func (r *Repository) DeleteEvent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.FeaturedEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Event{}, id).Error
	})
}

// GetFeaturedEvents retrieves the featured-event rows (0 or 1 in practice)
func (r *Repository) GetFeaturedEvents(ctx context.Context) ([]models.FeaturedEvent, error) {
	var featured []models.FeaturedEvent
	err := r.db.WithContext(ctx).Preload("Event").Find(&featured).Error
	if err != nil {
		return nil, err
	}
	return featured, nil
}

// SetFeaturedEvent makes eventID the only featured event. Any previously
// featured event is evicted in the same transaction, and the singleton
// invariant is re-checked before committing.
func (r *Repository) SetFeaturedEvent(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeaturedEvent{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.FeaturedEvent{EventID: eventID}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.FeaturedEvent{}).Count(&count).Error; err != nil {
			return err
		}
		if count != 1 {
			return fmt.Errorf("featured event rows after set: %d, want 1", count)
		}
		return nil
	})
}

// RemoveFeaturedEvent unfeatures the given event
func (r *Repository) RemoveFeaturedEvent(ctx context.Context, eventID uint) error {
	return r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&models.FeaturedEvent{}).Error
}
