package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"netpoleon-site/internal/cache"
	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	homePayloadCacheKey = "home:payload"
	homePayloadCacheTTL = 5 * time.Minute
)

// HomePayload is everything the public home page renders in one fetch
type HomePayload struct {
	Slides           []models.Slide          `json:"slides"`
	Announcement     *models.AnnouncementBar `json:"announcement,omitempty"`
	FeaturedEvent    *EventWithStatus        `json:"featured_event,omitempty"`
	FeaturedResource *models.Resource        `json:"featured_resource,omitempty"`
}

// TeamMemberInput carries the fields of an admin create form
type TeamMemberInput struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Bio          string `json:"bio"`
	PhotoURL     string `json:"photo_url"`
	DisplayOrder int    `json:"display_order"`
}

// SlideInput carries the fields of an admin create form
type SlideInput struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	ImageURL     string `json:"image_url"`
	LinkURL      string `json:"link_url"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

// AnnouncementInput carries the admin form for the announcement bar
type AnnouncementInput struct {
	Message  string `json:"message"`
	LinkURL  string `json:"link_url"`
	IsActive bool   `json:"is_active"`
}

// HomeInvalidator drops cached home-page state after a content write.
// SiteService satisfies it; other services hold the interface so they
// stay decoupled from the cache itself.
type HomeInvalidator interface {
	InvalidateHome(ctx context.Context)
}

// SiteService manages the site chrome: team members, hero slides and the
// announcement bar, plus the cached home-page payload.
type SiteService struct {
	repo  *repository.Repository
	cache *cache.Cache
	sink  notify.Sink
}

func NewSiteService(repo *repository.Repository, c *cache.Cache, sink notify.Sink) *SiteService {
	return &SiteService{repo: repo, cache: c, sink: sink}
}

// GetHomePayload assembles the home page content, served from cache when warm
func (s *SiteService) GetHomePayload(ctx context.Context) (*HomePayload, error) {
	var payload HomePayload
	hit, err := s.cache.GetJSON(ctx, homePayloadCacheKey, &payload)
	if err != nil {
		log.Warnf("home payload cache read failed: %v", err)
	}
	if hit {
		return &payload, nil
	}

	fresh, err := s.buildHomePayload(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, homePayloadCacheKey, fresh, homePayloadCacheTTL); err != nil {
		log.Warnf("home payload cache write failed: %v", err)
	}
	return fresh, nil
}

func (s *SiteService) buildHomePayload(ctx context.Context) (*HomePayload, error) {
	slides, err := s.repo.ListSlides(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load slides: %w", err)
	}

	payload := &HomePayload{Slides: slides}

	bar, err := s.repo.GetAnnouncementBar(ctx)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("load announcement bar: %w", err)
	}
	if bar != nil && bar.IsActive {
		payload.Announcement = bar
	}

	featuredEvents, err := s.repo.GetFeaturedEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("load featured event: %w", err)
	}
	if len(featuredEvents) > 0 && featuredEvents[0].Event != nil {
		e := *featuredEvents[0].Event
		payload.FeaturedEvent = &EventWithStatus{
			Event:  e,
			Status: DeriveEventStatus(e.EventDate, time.Now()),
		}
	}

	featuredResources, err := s.repo.GetFeaturedResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load featured resource: %w", err)
	}
	if len(featuredResources) > 0 && featuredResources[0].Resource != nil {
		payload.FeaturedResource = featuredResources[0].Resource
	}

	return payload, nil
}

// InvalidateHome drops the cached home payload after an admin write
func (s *SiteService) InvalidateHome(ctx context.Context) {
	if err := s.cache.Delete(ctx, homePayloadCacheKey); err != nil {
		log.Warnf("home payload cache invalidation failed: %v", err)
	}
}

// WarmHomeCache rebuilds the cached payload; used by the background job
func (s *SiteService) WarmHomeCache(ctx context.Context) error {
	payload, err := s.buildHomePayload(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetJSON(ctx, homePayloadCacheKey, payload, homePayloadCacheTTL)
}

// ListTeamMembers returns team members in display order
func (s *SiteService) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.ListTeamMembers(ctx)
}

// CreateTeamMember validates and stores a new team member
func (s *SiteService) CreateTeamMember(ctx context.Context, input TeamMemberInput) (*models.TeamMember, error) {
	if strings.TrimSpace(input.Name) == "" {
		s.sink.Notify(notify.Error("Create team member", "Name is required"))
		return nil, fmt.Errorf("name is required")
	}

	member := &models.TeamMember{
		Name:         strings.TrimSpace(input.Name),
		Position:     input.Position,
		Bio:          input.Bio,
		PhotoURL:     input.PhotoURL,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.repo.CreateTeamMember(ctx, member); err != nil {
		s.sink.Notify(notify.Error("Create team member", "Could not save the team member"))
		return nil, fmt.Errorf("create team member: %w", err)
	}

	s.sink.Notify(notify.Success("Create team member", "Team member created"))
	return member, nil
}

// UpdateTeamMember applies a partial update built by the handler
func (s *SiteService) UpdateTeamMember(ctx context.Context, id uint, updates map[string]interface{}) (*models.TeamMember, error) {
	if len(updates) == 0 {
		return s.repo.GetTeamMemberByID(ctx, id)
	}
	member, err := s.repo.UpdateTeamMember(ctx, id, updates)
	if err != nil {
		s.sink.Notify(notify.Error("Update team member", "Could not save the team member"))
		return nil, fmt.Errorf("update team member %d: %w", id, err)
	}
	s.sink.Notify(notify.Success("Update team member", "Team member updated"))
	return member, nil
}

// DeleteTeamMember removes a team member
func (s *SiteService) DeleteTeamMember(ctx context.Context, id uint) error {
	if err := s.repo.DeleteTeamMember(ctx, id); err != nil {
		s.sink.Notify(notify.Error("Delete team member", "Could not delete the team member"))
		return fmt.Errorf("delete team member %d: %w", id, err)
	}
	s.sink.Notify(notify.Success("Delete team member", "Team member deleted"))
	return nil
}

// ListSlides returns slides; activeOnly restricts to the public carousel
func (s *SiteService) ListSlides(ctx context.Context, activeOnly bool) ([]models.Slide, error) {
	return s.repo.ListSlides(ctx, activeOnly)
}

// CreateSlide validates and stores a new slide
func (s *SiteService) CreateSlide(ctx context.Context, input SlideInput) (*models.Slide, error) {
	if strings.TrimSpace(input.Title) == "" {
		s.sink.Notify(notify.Error("Create slide", "Title is required"))
		return nil, fmt.Errorf("title is required")
	}

	slide := &models.Slide{
		Title:        strings.TrimSpace(input.Title),
		Subtitle:     input.Subtitle,
		ImageURL:     input.ImageURL,
		LinkURL:      input.LinkURL,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	}
	if err := s.repo.CreateSlide(ctx, slide); err != nil {
		s.sink.Notify(notify.Error("Create slide", "Could not save the slide"))
		return nil, fmt.Errorf("create slide: %w", err)
	}

	s.InvalidateHome(ctx)
	s.sink.Notify(notify.Success("Create slide", "Slide created"))
	return slide, nil
}

// UpdateSlide applies a partial update built by the handler
func (s *SiteService) UpdateSlide(ctx context.Context, id uint, updates map[string]interface{}) (*models.Slide, error) {
	if len(updates) == 0 {
		return s.repo.GetSlideByID(ctx, id)
	}
	slide, err := s.repo.UpdateSlide(ctx, id, updates)
	if err != nil {
		s.sink.Notify(notify.Error("Update slide", "Could not save the slide"))
		return nil, fmt.Errorf("update slide %d: %w", id, err)
	}
	s.InvalidateHome(ctx)
	s.sink.Notify(notify.Success("Update slide", "Slide updated"))
	return slide, nil
}

// DeleteSlide removes a slide
func (s *SiteService) DeleteSlide(ctx context.Context, id uint) error {
	if err := s.repo.DeleteSlide(ctx, id); err != nil {
		s.sink.Notify(notify.Error("Delete slide", "Could not delete the slide"))
		return fmt.Errorf("delete slide %d: %w", id, err)
	}
	s.InvalidateHome(ctx)
	s.sink.Notify(notify.Success("Delete slide", "Slide deleted"))
	return nil
}

// GetAnnouncement returns the announcement bar, or nil when unset
func (s *SiteService) GetAnnouncement(ctx context.Context) (*models.AnnouncementBar, error) {
	bar, err := s.repo.GetAnnouncementBar(ctx)
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return bar, err
}

// SaveAnnouncement creates or replaces the announcement bar
func (s *SiteService) SaveAnnouncement(ctx context.Context, input AnnouncementInput) (*models.AnnouncementBar, error) {
	if strings.TrimSpace(input.Message) == "" {
		s.sink.Notify(notify.Error("Announcement", "Message is required"))
		return nil, fmt.Errorf("message is required")
	}

	bar, err := s.repo.GetAnnouncementBar(ctx)
	if err == gorm.ErrRecordNotFound {
		bar = &models.AnnouncementBar{}
	} else if err != nil {
		s.sink.Notify(notify.Error("Announcement", "Could not load the announcement bar"))
		return nil, fmt.Errorf("load announcement bar: %w", err)
	}

	bar.Message = strings.TrimSpace(input.Message)
	bar.LinkURL = input.LinkURL
	bar.IsActive = input.IsActive

	if err := s.repo.SaveAnnouncementBar(ctx, bar); err != nil {
		s.sink.Notify(notify.Error("Announcement", "Could not save the announcement bar"))
		return nil, fmt.Errorf("save announcement bar: %w", err)
	}

	s.InvalidateHome(ctx)
	s.sink.Notify(notify.Success("Announcement", "Announcement bar saved"))
	return bar, nil
}
