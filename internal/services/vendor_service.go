package services

import (
	"context"
	"fmt"
	"strings"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"
)

// VendorInput carries the fields of an admin create form. Types holds the
// category labels; they are stored comma-joined to match the source data.
type VendorInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	LogoURL     string   `json:"logo_url"`
	ImageURL    string   `json:"image_url"`
	DiagramURL  string   `json:"diagram_url"`
	Link        string   `json:"link"`
	Types       []string `json:"types"`
	Content     string   `json:"content"`
}

// VendorUpdate carries a partial update; nil fields stay unchanged
type VendorUpdate struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	LogoURL     *string   `json:"logo_url"`
	ImageURL    *string   `json:"image_url"`
	DiagramURL  *string   `json:"diagram_url"`
	Link        *string   `json:"link"`
	Types       *[]string `json:"types"`
	Content     *string   `json:"content"`
}

type VendorService struct {
	repo *repository.Repository
	sink notify.Sink
}

func NewVendorService(repo *repository.Repository, sink notify.Sink) *VendorService {
	return &VendorService{repo: repo, sink: sink}
}

// joinTypes normalizes a label slice into the stored comma-joined form
func joinTypes(types []string) string {
	clean := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ", ")
}

// ListVendors returns all vendors, alphabetical
func (s *VendorService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.ListVendors(ctx)
}

// GetVendor returns a single vendor
func (s *VendorService) GetVendor(ctx context.Context, id uint) (*models.Vendor, error) {
	return s.repo.GetVendorByID(ctx, id)
}

// CreateVendor validates and stores a new vendor
func (s *VendorService) CreateVendor(ctx context.Context, input VendorInput) (*models.Vendor, error) {
	if strings.TrimSpace(input.Name) == "" {
		s.sink.Notify(notify.Error("Create vendor", "Name is required"))
		return nil, fmt.Errorf("name is required")
	}

	vendor := &models.Vendor{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		LogoURL:     input.LogoURL,
		ImageURL:    input.ImageURL,
		DiagramURL:  input.DiagramURL,
		Link:        input.Link,
		Type:        joinTypes(input.Types),
		Content:     input.Content,
	}

	if err := s.repo.CreateVendor(ctx, vendor); err != nil {
		s.sink.Notify(notify.Error("Create vendor", "Could not save the vendor"))
		return nil, fmt.Errorf("create vendor: %w", err)
	}

	s.sink.Notify(notify.Success("Create vendor", "Vendor created"))
	return vendor, nil
}

// UpdateVendor applies the non-nil fields of update to the stored vendor
func (s *VendorService) UpdateVendor(ctx context.Context, id uint, update VendorUpdate) (*models.Vendor, error) {
	updates := map[string]interface{}{}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			s.sink.Notify(notify.Error("Update vendor", "Name cannot be empty"))
			return nil, fmt.Errorf("name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.LogoURL != nil {
		updates["logo_url"] = *update.LogoURL
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}
	if update.DiagramURL != nil {
		updates["diagram_url"] = *update.DiagramURL
	}
	if update.Link != nil {
		updates["link"] = *update.Link
	}
	if update.Types != nil {
		updates["type"] = joinTypes(*update.Types)
	}
	if update.Content != nil {
		updates["content"] = *update.Content
	}

	if len(updates) == 0 {
		return s.repo.GetVendorByID(ctx, id)
	}

	vendor, err := s.repo.UpdateVendor(ctx, id, updates)
	if err != nil {
		s.sink.Notify(notify.Error("Update vendor", "Could not save the vendor"))
		return nil, fmt.Errorf("update vendor %d: %w", id, err)
	}

	s.sink.Notify(notify.Success("Update vendor", "Vendor updated"))
	return vendor, nil
}

// DeleteVendor removes a vendor permanently
func (s *VendorService) DeleteVendor(ctx context.Context, id uint) error {
	if err := s.repo.DeleteVendor(ctx, id); err != nil {
		s.sink.Notify(notify.Error("Delete vendor", "Could not delete the vendor"))
		return fmt.Errorf("delete vendor %d: %w", id, err)
	}
	s.sink.Notify(notify.Success("Delete vendor", "Vendor deleted"))
	return nil
}
