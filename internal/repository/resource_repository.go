package repository

import (
	"context"
	"fmt"

	"netpoleon-site/internal/models"

	"gorm.io/gorm"
)

// ListResources retrieves resources, optionally restricted to published rows,
// newest first
func (r *Repository) ListResources(ctx context.Context, publishedOnly bool) ([]models.Resource, error) {
	var resources []models.Resource
	query := r.db.WithContext(ctx).Preload("Type").Order("created_at DESC")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	if err := query.Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// GetResourceByID retrieves a resource by ID
func (r *Repository) GetResourceByID(ctx context.Context, id uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.WithContext(ctx).Preload("Type").Where("id = ?", id).First(&resource).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// CreateResource creates a new resource
func (r *Repository) CreateResource(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// UpdateResource applies a partial update and returns the stored row
func (r *Repository) UpdateResource(ctx context.Context, id uint, updates map[string]interface{}) (*models.Resource, error) {
	if err := r.db.WithContext(ctx).Model(&models.Resource{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetResourceByID(ctx, id)
}

// DeleteResource removes a resource and its featured row, if any
func (r *Repository) DeleteResource(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_id = ?", id).Delete(&models.FeaturedResource{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Resource{}, id).Error
	})
}

// ListResourceTypes retrieves the category lookup table
func (r *Repository) ListResourceTypes(ctx context.Context) ([]models.ResourceType, error) {
	var types []models.ResourceType
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetFeaturedResources retrieves the featured-resource rows (0 or 1 in practice)
func (r *Repository) GetFeaturedResources(ctx context.Context) ([]models.FeaturedResource, error) {
	var featured []models.FeaturedResource
	err := r.db.WithContext(ctx).Preload("Resource").Preload("Resource.Type").Find(&featured).Error
	if err != nil {
		return nil, err
	}
	return featured, nil
}

// SetFeaturedResource makes resourceID the only featured resource, evicting
// any prior one in the same transaction
func (r *Repository) SetFeaturedResource(ctx context.Context, resourceID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeaturedResource{}).Error; err != nil {
			return err
		}
		if err := tx.Create(&models.FeaturedResource{ResourceID: resourceID}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.FeaturedResource{}).Count(&count).Error; err != nil {
			return err
		}
		if count != 1 {
			return fmt.Errorf("featured resource rows after set: %d, want 1", count)
		}
		return nil
	})
}

// RemoveFeaturedResource unfeatures the given resource
func (r *Repository) RemoveFeaturedResource(ctx context.Context, resourceID uint) error {
	return r.db.WithContext(ctx).Where("resource_id = ?", resourceID).Delete(&models.FeaturedResource{}).Error
}
