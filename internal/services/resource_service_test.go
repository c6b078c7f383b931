package services

import (
	"context"
	"testing"

	"netpoleon-site/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResourceFixture(t *testing.T) (*ResourceService, *repository.Repository) {
	db := setupTestDB(t)
	repo := repository.NewRepository(db)
	return NewResourceService(repo, &recordSink{}, nil), repo
}

func TestCreateResourceContentLinkExclusive(t *testing.T) {
	svc, repo := newResourceFixture(t)
	ctx := context.Background()

	// Both set
	_, err := svc.CreateResource(ctx, ResourceInput{
		Title:       "Zero Trust Explained",
		Content:     "<p>zt</p>",
		ArticleLink: "https://example.com/zt",
	})
	require.Error(t, err)

	// Neither set
	_, err = svc.CreateResource(ctx, ResourceInput{Title: "Zero Trust Explained"})
	require.Error(t, err)

	resources, err := repo.ListResources(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, resources)

	// Exactly one set
	created, err := svc.CreateResource(ctx, ResourceInput{
		Title:   "Zero Trust Explained",
		Content: "<p>zt</p>",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCreateResourcePublishedSetsDate(t *testing.T) {
	svc, _ := newResourceFixture(t)
	ctx := context.Background()

	draft, err := svc.CreateResource(ctx, ResourceInput{
		Title:   "Ransomware Report",
		Content: "<p>rr</p>",
	})
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)
	assert.Nil(t, draft.PublishedAt)

	published, err := svc.CreateResource(ctx, ResourceInput{
		Title:       "Security Checklist",
		ArticleLink: "https://example.com/checklist",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.True(t, published.IsPublished)
	require.NotNil(t, published.PublishedAt)
	assert.Len(t, *published.PublishedAt, 10)
}

func TestUpdateResourcePublishFlip(t *testing.T) {
	svc, _ := newResourceFixture(t)
	ctx := context.Background()

	resource, err := svc.CreateResource(ctx, ResourceInput{
		Title:   "Ransomware Report",
		Content: "<p>rr</p>",
	})
	require.NoError(t, err)

	// Publish
	published := true
	updated, err := svc.UpdateResource(ctx, resource.ID, ResourceUpdate{IsPublished: &published})
	require.NoError(t, err)
	assert.True(t, updated.IsPublished)
	require.NotNil(t, updated.PublishedAt)

	// Unpublish clears the date
	unpublished := false
	updated, err = svc.UpdateResource(ctx, resource.ID, ResourceUpdate{IsPublished: &unpublished})
	require.NoError(t, err)
	assert.False(t, updated.IsPublished)
	assert.Nil(t, updated.PublishedAt)
}

func TestUpdateResourceKeepsExclusivity(t *testing.T) {
	svc, _ := newResourceFixture(t)
	ctx := context.Background()

	resource, err := svc.CreateResource(ctx, ResourceInput{
		Title:   "Zero Trust Explained",
		Content: "<p>zt</p>",
	})
	require.NoError(t, err)

	// Adding a link while content remains is rejected
	link := "https://example.com/zt"
	_, err = svc.UpdateResource(ctx, resource.ID, ResourceUpdate{ArticleLink: &link})
	require.Error(t, err)

	// Swapping content for a link in one update is allowed
	empty := ""
	updated, err := svc.UpdateResource(ctx, resource.ID, ResourceUpdate{
		Content:     &empty,
		ArticleLink: &link,
	})
	require.NoError(t, err)
	assert.Equal(t, link, updated.ArticleLink)
	assert.Empty(t, updated.Content)
}

func TestUpdateResourceCannotClearBoth(t *testing.T) {
	svc, repo := newResourceFixture(t)
	ctx := context.Background()

	resource, err := svc.CreateResource(ctx, ResourceInput{
		Title:   "Zero Trust Explained",
		Content: "<p>zt</p>",
	})
	require.NoError(t, err)

	// Clearing the content without supplying a link would leave the
	// resource with neither; rejected, and the stored row is untouched
	empty := ""
	_, err = svc.UpdateResource(ctx, resource.ID, ResourceUpdate{Content: &empty})
	require.Error(t, err)

	stored, err := repo.GetResourceByID(ctx, resource.ID)
	require.NoError(t, err)
	assert.Equal(t, "<p>zt</p>", stored.Content)

	// Same for a link-only resource losing its link
	link, err := svc.CreateResource(ctx, ResourceInput{
		Title:       "Security Checklist",
		ArticleLink: "https://example.com/checklist",
	})
	require.NoError(t, err)

	_, err = svc.UpdateResource(ctx, link.ID, ResourceUpdate{ArticleLink: &empty})
	require.Error(t, err)

	stored, err = repo.GetResourceByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/checklist", stored.ArticleLink)
}

func TestListResourcesPublishedOnly(t *testing.T) {
	svc, _ := newResourceFixture(t)
	ctx := context.Background()

	_, err := svc.CreateResource(ctx, ResourceInput{Title: "Draft", Content: "<p>d</p>"})
	require.NoError(t, err)
	_, err = svc.CreateResource(ctx, ResourceInput{
		Title:       "Live",
		Content:     "<p>l</p>",
		IsPublished: true,
	})
	require.NoError(t, err)

	public, err := svc.ListResources(ctx, true)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Live", public[0].Title)

	all, err := svc.ListResources(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteResourceRemovesFeaturedRow(t *testing.T) {
	svc, repo := newResourceFixture(t)
	ctx := context.Background()

	resource, err := svc.CreateResource(ctx, ResourceInput{Title: "Live", Content: "<p>l</p>"})
	require.NoError(t, err)
	require.NoError(t, repo.SetFeaturedResource(ctx, resource.ID))

	require.NoError(t, svc.DeleteResource(ctx, resource.ID))

	set, err := repo.GetFeaturedResources(ctx)
	require.NoError(t, err)
	assert.Empty(t, set)
}
