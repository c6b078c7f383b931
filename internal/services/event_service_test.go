package services

import (
	"context"
	"testing"
	"time"

	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventFixture(t *testing.T) (*EventService, *repository.Repository, *recordSink) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	sink := &recordSink{}
	return NewEventService(repo, sink, nil), repo, sink
}

func TestCreateEventValidation(t *testing.T) {
	svc, repo, sink := newEventFixture(t)
	ctx := context.Background()

	// Missing title: rejected before any store write
	_, err := svc.CreateEvent(ctx, EventInput{EventDate: "2099-10-10"})
	require.Error(t, err)
	assert.Equal(t, notify.TypeError, sink.lastType())

	// Missing date
	_, err = svc.CreateEvent(ctx, EventInput{Title: "Security Conference"})
	require.Error(t, err)

	// Unparseable date
	_, err = svc.CreateEvent(ctx, EventInput{Title: "Security Conference", EventDate: "someday"})
	require.Error(t, err)

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestCreateEventNormalizesDate(t *testing.T) {
	svc, _, sink := newEventFixture(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{Title: "Partner Day", EventDate: "Oct 10, 2099"})
	require.NoError(t, err)
	assert.Equal(t, "2099-10-10", event.EventDate)
	assert.NotZero(t, event.ID)
	assert.Equal(t, notify.TypeSuccess, sink.lastType())
}

func TestUpdateEventPartial(t *testing.T) {
	svc, _, _ := newEventFixture(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{
		Title:     "Security Conference",
		EventDate: "2099-10-10",
		Location:  "Sydney",
	})
	require.NoError(t, err)

	newLocation := "Melbourne"
	updated, err := svc.UpdateEvent(ctx, event.ID, EventUpdate{Location: &newLocation})
	require.NoError(t, err)

	// Omitted fields keep their stored values
	assert.Equal(t, "Security Conference", updated.Title)
	assert.Equal(t, "2099-10-10", updated.EventDate)
	assert.Equal(t, "Melbourne", updated.Location)
}

// Editing the date flips the derived status on the next read; nothing about
// the status is stored.
func TestUpdateEventDateChangesDerivedStatus(t *testing.T) {
	svc, _, _ := newEventFixture(t)
	ctx := context.Background()
	now := time.Now()

	event, err := svc.CreateEvent(ctx, EventInput{Title: "Security Conference", EventDate: "2099-10-10"})
	require.NoError(t, err)
	assert.Equal(t, StatusUpcoming, DeriveEventStatus(event.EventDate, now))

	pastDate := "2000-01-01"
	_, err = svc.UpdateEvent(ctx, event.ID, EventUpdate{EventDate: &pastDate})
	require.NoError(t, err)

	refetched, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPast, DeriveEventStatus(refetched.EventDate, now))
}

func TestDeleteEventRemovesFeaturedRow(t *testing.T) {
	svc, repo, _ := newEventFixture(t)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{Title: "Partner Day", EventDate: "2099-10-10"})
	require.NoError(t, err)
	require.NoError(t, repo.SetFeaturedEvent(ctx, event.ID))

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))

	events, err := repo.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	set, err := repo.GetFeaturedEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, set)
}

// Edits and deletes can change the featured event embedded in the cached
// home payload, so both must drop the cache on success.
func TestEventWritesDropHomeCache(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	home := &recordInvalidator{}
	svc := NewEventService(repo, &recordSink{}, home)
	ctx := context.Background()

	event, err := svc.CreateEvent(ctx, EventInput{Title: "Security Conference", EventDate: "2099-10-10"})
	require.NoError(t, err)

	newTitle := "Security Conference 2099"
	_, err = svc.UpdateEvent(ctx, event.ID, EventUpdate{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, 1, home.calls)

	// A rejected update leaves the cache alone
	empty := ""
	_, err = svc.UpdateEvent(ctx, event.ID, EventUpdate{Title: &empty})
	require.Error(t, err)
	assert.Equal(t, 1, home.calls)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))
	assert.Equal(t, 2, home.calls)
}

func TestListEventsNewestFirst(t *testing.T) {
	svc, _, _ := newEventFixture(t)
	ctx := context.Background()

	_, err := svc.CreateEvent(ctx, EventInput{Title: "Past Summit", EventDate: "2000-01-01"})
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, EventInput{Title: "Security Conference", EventDate: "2099-10-10"})
	require.NoError(t, err)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Security Conference", events[0].Title)
}
