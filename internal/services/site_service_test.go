package services

import (
	"context"
	"testing"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSiteFixture(t *testing.T) (*SiteService, *repository.Repository) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	// nil cache: the service serves straight from the store
	return NewSiteService(repo, nil, &recordSink{}), repo
}

func TestSaveAnnouncementIsSingleton(t *testing.T) {
	svc, _ := newSiteFixture(t)
	ctx := context.Background()

	first, err := svc.SaveAnnouncement(ctx, AnnouncementInput{Message: "We moved office", IsActive: true})
	require.NoError(t, err)

	second, err := svc.SaveAnnouncement(ctx, AnnouncementInput{Message: "New vendor onboard", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "saving replaces the existing row")
	assert.Equal(t, "New vendor onboard", second.Message)

	_, err = svc.SaveAnnouncement(ctx, AnnouncementInput{Message: "   "})
	assert.Error(t, err)
}

func TestGetHomePayload(t *testing.T) {
	svc, repo := newSiteFixture(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateSlide(ctx, &models.Slide{Title: "Visible", IsActive: true}))
	require.NoError(t, repo.CreateSlide(ctx, &models.Slide{Title: "Hidden", IsActive: false}))

	event := &models.Event{Title: "Security Conference", EventDate: "2099-10-10"}
	require.NoError(t, repo.CreateEvent(ctx, event))
	require.NoError(t, repo.SetFeaturedEvent(ctx, event.ID))

	_, err := svc.SaveAnnouncement(ctx, AnnouncementInput{Message: "We moved office", IsActive: true})
	require.NoError(t, err)

	payload, err := svc.GetHomePayload(ctx)
	require.NoError(t, err)

	require.Len(t, payload.Slides, 1)
	assert.Equal(t, "Visible", payload.Slides[0].Title)

	require.NotNil(t, payload.Announcement)
	assert.Equal(t, "We moved office", payload.Announcement.Message)

	require.NotNil(t, payload.FeaturedEvent)
	assert.Equal(t, event.ID, payload.FeaturedEvent.ID)
	assert.Equal(t, StatusUpcoming, payload.FeaturedEvent.Status)

	assert.Nil(t, payload.FeaturedResource)
}

func TestHomePayloadSkipsInactiveAnnouncement(t *testing.T) {
	svc, _ := newSiteFixture(t)
	ctx := context.Background()

	_, err := svc.SaveAnnouncement(ctx, AnnouncementInput{Message: "Hidden note", IsActive: false})
	require.NoError(t, err)

	payload, err := svc.GetHomePayload(ctx)
	require.NoError(t, err)
	assert.Nil(t, payload.Announcement)
}

func TestTeamMemberCRUD(t *testing.T) {
	svc, repo := newSiteFixture(t)
	ctx := context.Background()

	_, err := svc.CreateTeamMember(ctx, TeamMemberInput{Name: "  "})
	require.Error(t, err)

	member, err := svc.CreateTeamMember(ctx, TeamMemberInput{Name: "Dana Wu", Position: "Sales Director", DisplayOrder: 2})
	require.NoError(t, err)

	_, err = svc.CreateTeamMember(ctx, TeamMemberInput{Name: "Ari Chen", Position: "Engineer", DisplayOrder: 1})
	require.NoError(t, err)

	members, err := svc.ListTeamMembers(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Ari Chen", members[0].Name, "ordered by display_order")

	newPosition := "Managing Director"
	updated, err := svc.UpdateTeamMember(ctx, member.ID, map[string]interface{}{"position": newPosition})
	require.NoError(t, err)
	assert.Equal(t, newPosition, updated.Position)
	assert.Equal(t, "Dana Wu", updated.Name)

	require.NoError(t, svc.DeleteTeamMember(ctx, member.ID))
	members, err = repo.ListTeamMembers(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}
