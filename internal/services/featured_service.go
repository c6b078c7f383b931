package services

import (
	"context"
	"fmt"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"
)

// FeaturedService keeps the "at most one featured item per entity type"
// invariant. Featuring an item evicts the previous one inside a single
// transaction; nothing is assumed of the store beyond that transaction.
type FeaturedService struct {
	repo *repository.Repository
	sink notify.Sink
	home HomeInvalidator
}

func NewFeaturedService(repo *repository.Repository, sink notify.Sink, home HomeInvalidator) *FeaturedService {
	return &FeaturedService{repo: repo, sink: sink, home: home}
}

// invalidateHome drops the cached home payload; toggles change what the
// home page shows, so the cache goes stale on every successful write.
func (s *FeaturedService) invalidateHome(ctx context.Context) {
	if s.home != nil {
		s.home.InvalidateHome(ctx)
	}
}

// ListFeaturedEvents returns the featured-event rows with events preloaded
func (s *FeaturedService) ListFeaturedEvents(ctx context.Context) ([]models.FeaturedEvent, error) {
	return s.repo.GetFeaturedEvents(ctx)
}

// ListFeaturedResources returns the featured-resource rows with resources
// preloaded
func (s *FeaturedService) ListFeaturedResources(ctx context.Context) ([]models.FeaturedResource, error) {
	return s.repo.GetFeaturedResources(ctx)
}

// IsEventFeatured reports whether eventID is in the featured set
func IsEventFeatured(set []models.FeaturedEvent, eventID uint) bool {
	for _, f := range set {
		if f.EventID == eventID {
			return true
		}
	}
	return false
}

// IsResourceFeatured reports whether resourceID is in the featured set
func IsResourceFeatured(set []models.FeaturedResource, resourceID uint) bool {
	for _, f := range set {
		if f.ResourceID == resourceID {
			return true
		}
	}
	return false
}

// ToggleFeaturedEvent features eventID if it is not featured, and unfeatures
// it if it is. Returns whether the event is featured after the call. On
// error the stored state is unchanged and the caller must re-fetch rather
// than patch local copies.
func (s *FeaturedService) ToggleFeaturedEvent(ctx context.Context, eventID uint) (bool, error) {
	set, err := s.repo.GetFeaturedEvents(ctx)
	if err != nil {
		s.sink.Notify(notify.Error("Featured event", "Could not load the featured event"))
		return false, fmt.Errorf("load featured events: %w", err)
	}

	if IsEventFeatured(set, eventID) {
		if err := s.repo.RemoveFeaturedEvent(ctx, eventID); err != nil {
			s.sink.Notify(notify.Error("Featured event", "Could not remove the featured event"))
			return true, fmt.Errorf("remove featured event %d: %w", eventID, err)
		}
		s.invalidateHome(ctx)
		s.sink.Notify(notify.Success("Featured event", "Event removed from the home page"))
		return false, nil
	}

	if err := s.repo.SetFeaturedEvent(ctx, eventID); err != nil {
		s.sink.Notify(notify.Error("Featured event", "Could not set the featured event"))
		return false, fmt.Errorf("set featured event %d: %w", eventID, err)
	}
	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Featured event", "Event now featured on the home page"))
	return true, nil
}

// ToggleFeaturedResource is the resource counterpart of ToggleFeaturedEvent
func (s *FeaturedService) ToggleFeaturedResource(ctx context.Context, resourceID uint) (bool, error) {
	set, err := s.repo.GetFeaturedResources(ctx)
	if err != nil {
		s.sink.Notify(notify.Error("Featured resource", "Could not load the featured resource"))
		return false, fmt.Errorf("load featured resources: %w", err)
	}

	if IsResourceFeatured(set, resourceID) {
		if err := s.repo.RemoveFeaturedResource(ctx, resourceID); err != nil {
			s.sink.Notify(notify.Error("Featured resource", "Could not remove the featured resource"))
			return true, fmt.Errorf("remove featured resource %d: %w", resourceID, err)
		}
		s.invalidateHome(ctx)
		s.sink.Notify(notify.Success("Featured resource", "Resource removed from the home page"))
		return false, nil
	}

	if err := s.repo.SetFeaturedResource(ctx, resourceID); err != nil {
		s.sink.Notify(notify.Error("Featured resource", "Could not set the featured resource"))
		return false, fmt.Errorf("set featured resource %d: %w", resourceID, err)
	}
	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Featured resource", "Resource now featured on the home page"))
	return true, nil
}
