package repository

import (
	"context"

	"netpoleon-site/internal/models"
)

// ListVendors retrieves all vendors, alphabetical
func (r *Repository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

// GetVendorByID retrieves a vendor by ID
func (r *Repository) GetVendorByID(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// CreateVendor creates a new vendor
func (r *Repository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

// UpdateVendor applies a partial update and returns the stored row
func (r *Repository) UpdateVendor(ctx context.Context, id uint, updates map[string]interface{}) (*models.Vendor, error) {
	if err := r.db.WithContext(ctx).Model(&models.Vendor{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetVendorByID(ctx, id)
}

// DeleteVendor removes a vendor
func (r *Repository) DeleteVendor(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Vendor{}, id).Error
}

// ListTeamMembers retrieves team members in display order
func (r *Repository) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.WithContext(ctx).Order("display_order ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetTeamMemberByID retrieves a team member by ID
func (r *Repository) GetTeamMemberByID(ctx context.Context, id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CreateTeamMember creates a new team member
func (r *Repository) CreateTeamMember(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// UpdateTeamMember applies a partial update and returns the stored row
func (r *Repository) UpdateTeamMember(ctx context.Context, id uint, updates map[string]interface{}) (*models.TeamMember, error) {
	if err := r.db.WithContext(ctx).Model(&models.TeamMember{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetTeamMemberByID(ctx, id)
}

// DeleteTeamMember removes a team member
func (r *Repository) DeleteTeamMember(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TeamMember{}, id).Error
}

// ListSlides retrieves slides in display order; activeOnly restricts to
// slides shown on the public home page
func (r *Repository) ListSlides(ctx context.Context, activeOnly bool) ([]models.Slide, error) {
	var slides []models.Slide
	query := r.db.WithContext(ctx).Order("display_order ASC, id ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if err := query.Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// GetSlideByID retrieves a slide by ID
func (r *Repository) GetSlideByID(ctx context.Context, id uint) (*models.Slide, error) {
	var slide models.Slide
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slide).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

// CreateSlide creates a new slide
func (r *Repository) CreateSlide(ctx context.Context, slide *models.Slide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

// UpdateSlide applies a partial update and returns the stored row
func (r *Repository) UpdateSlide(ctx context.Context, id uint, updates map[string]interface{}) (*models.Slide, error) {
	if err := r.db.WithContext(ctx).Model(&models.Slide{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.GetSlideByID(ctx, id)
}

// DeleteSlide removes a slide
func (r *Repository) DeleteSlide(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Slide{}, id).Error
}

// GetAnnouncementBar retrieves the current announcement bar, or nil when none
// has been configured yet
func (r *Repository) GetAnnouncementBar(ctx context.Context) (*models.AnnouncementBar, error) {
	var bar models.AnnouncementBar
	err := r.db.WithContext(ctx).Order("id ASC").First(&bar).Error
	if err != nil {
		return nil, err
	}
	return &bar, nil
}

// SaveAnnouncementBar creates or updates the announcement bar row
func (r *Repository) SaveAnnouncementBar(ctx context.Context, bar *models.AnnouncementBar) error {
	return r.db.WithContext(ctx).Save(bar).Error
}
