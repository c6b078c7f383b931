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

// EventInput carries the fields of an admin create form
type EventInput struct {
	Title       string `json:"title"`
	EventDate   string `json:"event_date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Video       string `json:"video"`
	ImageURL    string `json:"image_url"`
}

// EventUpdate carries a partial update; nil fields stay unchanged
type EventUpdate struct {
	Title       *string `json:"title"`
	EventDate   *string `json:"event_date"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Video       *string `json:"video"`
	ImageURL    *string `json:"image_url"`
}

// EventWithStatus is an event plus its derived temporal status
type EventWithStatus struct {
	models.Event
	Status EventStatus `json:"status"`
}

// AttachEventStatus derives the status of each event against now
func AttachEventStatus(events []models.Event, now time.Time) []EventWithStatus {
	out := make([]EventWithStatus, 0, len(events))
	for _, e := range events {
		out = append(out, EventWithStatus{Event: e, Status: DeriveEventStatus(e.EventDate, now)})
	}
	return out
}

type EventService struct {
	repo *repository.Repository
	sink notify.Sink
	home HomeInvalidator
}

func NewEventService(repo *repository.Repository, sink notify.Sink, home HomeInvalidator) *EventService {
	return &EventService{repo: repo, sink: sink, home: home}
}

// invalidateHome drops the cached home payload. The featured event is
// embedded in it, so edits and deletes can change what the home page shows.
func (s *EventService) invalidateHome(ctx context.Context) {
	if s.home != nil {
		s.home.InvalidateHome(ctx)
	}
}

// ListEvents returns all events, newest first
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.ListEvents(ctx)
}

// GetEvent returns a single event
func (s *EventService) GetEvent(ctx context.Context, id uint) (*models.Event, error) {
	return s.repo.GetEventByID(ctx, id)
}

// CreateEvent validates and stores a new event. Validation failures are
// reported before any database call is made.
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (*models.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		s.sink.Notify(notify.Error("Create event", "Title is required"))
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(input.EventDate) == "" {
		s.sink.Notify(notify.Error("Create event", "Event date is required"))
		return nil, fmt.Errorf("event date is required")
	}

	date, err := NormalizeEventDate(input.EventDate)
	if err != nil {
		s.sink.Notify(notify.Error("Create event", "Event date is not a valid date"))
		return nil, err
	}

	event := &models.Event{
		Title:       strings.TrimSpace(input.Title),
		EventDate:   date,
		Location:    input.Location,
		Description: input.Description,
		Link:        input.Link,
		Video:       input.Video,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		s.sink.Notify(notify.Error("Create event", "Could not save the event"))
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.sink.Notify(notify.Success("Create event", "Event created"))
	return event, nil
}

// UpdateEvent applies the non-nil fields of update to the stored event
func (s *EventService) UpdateEvent(ctx context.Context, id uint, update EventUpdate) (*models.Event, error) {
	updates := map[string]interface{}{}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			s.sink.Notify(notify.Error("Update event", "Title cannot be empty"))
			return nil, fmt.Errorf("title cannot be empty")
		}
		updates["title"] = strings.TrimSpace(*update.Title)
	}
	if update.EventDate != nil {
		date, err := NormalizeEventDate(*update.EventDate)
		if err != nil {
			s.sink.Notify(notify.Error("Update event", "Event date is not a valid date"))
			return nil, err
		}
		updates["event_date"] = date
	}
	if update.Location != nil {
		updates["location"] = *update.Location
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Link != nil {
		updates["link"] = *update.Link
	}
	if update.Video != nil {
		updates["video"] = *update.Video
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}

	if len(updates) == 0 {
		return s.repo.GetEventByID(ctx, id)
	}

	event, err := s.repo.UpdateEvent(ctx, id, updates)
	if err != nil {
		s.sink.Notify(notify.Error("Update event", "Could not save the event"))
		return nil, fmt.Errorf("update event %d: %w", id, err)
	}

	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Update event", "Event updated"))
	return event, nil
}

// DeleteEvent removes an event permanently
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		s.sink.Notify(notify.Error("Delete event", "Could not delete the event"))
		return fmt.Errorf("delete event %d: %w", id, err)
	}
	s.invalidateHome(ctx)
	s.sink.Notify(notify.Success("Delete event", "Event deleted"))
	return nil
}
