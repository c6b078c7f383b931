package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"
)

// ResourceInput carries the fields of an admin create form. Content and
// ArticleLink are mutually exclusive; exactly one must be set.
type ResourceInput struct {
	Title         string `json:"title"`
	TypeID        *uint  `json:"type_id"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	ArticleLink   string `json:"article_link"`
	IsPublished   bool   `json:"is_published"`
	CoverImageURL string `json:"cover_image_url"`
}

// ResourceUpdate carries a partial update; nil fields stay unchanged
type ResourceUpdate struct {
	Title         *string `json:"title"`
	TypeID        *uint   `json:"type_id"`
	Description   *string `json:"description"`
	Content       *string `json:"content"`
	ArticleLink   *string `json:"article_link"`
	IsPublished   *bool   `json:"is_published"`
	CoverImageURL *string `json:"cover_image_url"`
}

type ResourceService struct {
	repo *repository.Repository
	sink notify.Sink
	home HomeInvalidator
}

func NewResourceService(repo *repository.Repository, sink notify.Sink, home HomeInvalidator) *ResourceService {
	return &ResourceService{repo: repo, sink: sink, home: home}
}

// invalidateHome drops the cached home payload. The featured resource is
// embedded in it, so edits and deletes can change what the home page shows.
func (s *ResourceService) invalidateHome(ctx context.Context) {
	if s.home != nil {
		s.home.InvalidateHome(ctx)
	}
}

// ListResources returns resources; publishedOnly restricts to the public view
func (s *ResourceService) ListResources(ctx context.Context, publishedOnly bool) ([]models.Resource, error) {
	return s.repo.ListResources(ctx, publishedOnly)
}

// GetResource returns a single resource
func (s *ResourceService) GetResource(ctx context.Context, id uint) (*models.Resource, error) {
	return s.repo.GetResourceByID(ctx, id)
}

// ListResourceTypes returns the category lookup table
func (s *ResourceService) ListResourceTypes(ctx context.Context) ([]models.ResourceType, error) {
	return s.repo.ListResourceTypes(ctx)
}

// CreateResource validates and stores a new resource
func (s *ResourceService) CreateResource(ctx context.Context, input ResourceInput) (*models.Resource, error) {
	if strings.TrimSpace(input.Title) == "" {
		s.sink.Notify(notify.Error("Create resource", "Title is required"))
		return nil, fmt.Errorf("title is required")
	}

	hasContent := strings.TrimSpace(input.Content) != ""
	hasLink := strings.TrimSpace(input.ArticleLink) != ""
	if hasContent == hasLink {
		s.sink.Notify(notify.Error("Create resource", "Provide either article content or an external link, not both"))
		return nil, fmt.Errorf("exactly one of content and article_link must be set")
	}

	resource := &models.Resource{
		Title:         strings.TrimSpace(input.Title),
		TypeID:        input.TypeID,
		Description:   input.Description,
		Content:       input.Content,
		ArticleLink:   input.ArticleLink,
		IsPublished:   input.IsPublished,
		CoverImageURL: input.CoverImageURL,
	}
	if input.IsPublished {
		date := time.Now().Format(dateLayout)
		resource.PublishedAt = &date
	}

	if err := s.repo.CreateResource(ctx, resource); err != nil {
		s.sink.Notify(notify.Error("Create resource", "Could not save the resource"))
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.sink.Notify(notify.Success("Create resource", "Resource created"))
	return resource, nil
}

// UpdateResource applies the non-nil fields of update to the stored resource.
// The content/article_link exclusivity is checked against the merged result,
// and flipping is_published sets or clears published_at.
func (s *ResourceService) UpdateResource(ctx context.Context, id uint, update ResourceUpdate) (*models.Resource, error) {
	current, err := s.repo.GetResourceByID(ctx, id)
	if err != nil {
		s.sink.Notify(notify.Error("Update resource", "Resource not found"))
		return nil, fmt.Errorf("load resource %d: %w", id, err)
	}

	mergedContent := current.Content
	if update.Content != nil {
		mergedContent = *update.Content
	}
	mergedLink := current.ArticleLink
	if update.ArticleLink != nil {
		mergedLink = *update.ArticleLink
	}
	// Same rule as create, applied to the merged result: exactly one of
	// content and article_link after the update.
	hasContent := strings.TrimSpace(mergedContent) != ""
	hasLink := strings.TrimSpace(mergedLink) != ""
	if hasContent == hasLink {
		s.sink.Notify(notify.Error("Update resource", "Provide either article content or an external link, not both"))
		return nil, fmt.Errorf("exactly one of content and article_link must be set")
	}

	updates := map[string]interface{}{}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			s.sink.Notify(notify.Error("Update resource", "Title cannot be empty"))
			return nil, fmt.Errorf("title cannot be empty")
		}
		updates["title"] = strings.TrimSpace(*update.Title)
	}
	if update.TypeID != nil {
		updates["type_id"] = *update.TypeID
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Content != nil {
		updates["content"] = *update.Content
	}
	if update.ArticleLink != nil {
		updates["article_link"] = *update.ArticleLink
	}
	if update.CoverImageURL != nil {
		updates["cover_image_url"] = *update.CoverImageURL
	}
	if update.IsPublished != nil && *update.IsPublished != current.IsPublished {
		updates["is_published"] = *update.IsPublished
		if *update.IsPublished {
			updates["published_at"] = time.Now().Format(dateLayout)
		} else {
			updates["published_at"] = nil
		}
	}

	if len(updates) == 0 {
		return current, nil
	}

	resource, err := s.repo.UpdateResource(ctx, id, updates)
	if err != nil {
		s.sink.Notify(notify.Error("Update resource", "Could not save the resource"))
		return nil, fmt.Errorf("update resource %d: %w", id, err)
	}

	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Update resource", "Resource updated"))
	return resource, nil
}

// DeleteResource removes a resource permanently
func (s *ResourceService) DeleteResource(ctx context.Context, id uint) error {
	if err := s.repo.DeleteResource(ctx, id); err != nil {
		s.sink.Notify(notify.Error("Delete resource", "Could not delete the resource"))
		return fmt.Errorf("delete resource %d: %w", id, err)
	}
	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Delete resource", "Resource deleted"))
	return nil
}
