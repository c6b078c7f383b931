package services

import (
	"testing"

	"netpoleon-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Security Conference", EventDate: "2099-10-10", Location: "Sydney"},
		{ID: 2, Title: "Past Summit", EventDate: "2000-01-01", Location: "Melbourne"},
		{ID: 3, Title: "Partner Day", EventDate: "2025-03-01", Description: "Annual security partner briefing"},
	}
}

func TestFilterEventsBySearchTerm(t *testing.T) {
	events := sampleEvents()[:2]

	got := FilterEvents(events, "security")
	require.Len(t, got, 1)
	assert.Equal(t, "Security Conference", got[0].Title)
	assert.Equal(t, "1 events total", EventCountLabel(len(got)))
}

func TestFilterEventsCaseInsensitive(t *testing.T) {
	events := sampleEvents()

	upper := FilterEvents(events, "SECURITY")
	lower := FilterEvents(events, "security")
	assert.Equal(t, lower, upper)
}

func TestFilterEventsMatchesDescriptionOnly(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, "briefing")
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
}

func TestFilterEventsEmptyTermMatchesAll(t *testing.T) {
	events := sampleEvents()

	assert.Len(t, FilterEvents(events, ""), len(events))
	assert.Len(t, FilterEvents(events, "   "), len(events))
}

func TestFilterEventsNoMatchesReturnsEmptySlice(t *testing.T) {
	got := FilterEvents(sampleEvents(), "quantum")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterEventsPreservesOrder(t *testing.T) {
	events := sampleEvents()

	got := FilterEvents(events, "e")
	var prev uint
	for _, e := range got {
		assert.Greater(t, e.ID, prev)
		prev = e.ID
	}
}

func typeID(id uint) *uint { return &id }

func sampleResources() []models.Resource {
	return []models.Resource{
		{ID: 1, Title: "Zero Trust Explained", TypeID: typeID(1), Content: "<p>zero trust</p>"},
		{ID: 2, Title: "Ransomware Report", TypeID: typeID(2), Description: "Annual security report"},
		{ID: 3, Title: "Security Checklist", ArticleLink: "https://example.com/checklist"},
	}
}

func TestFilterResourcesAndComposition(t *testing.T) {
	resources := sampleResources()
	filter := ResourceFilter{Search: "security", TypeID: typeID(2)}

	got := FilterResources(resources, filter)
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// The combined result is a subset of each predicate applied alone
	bySearch := FilterResources(resources, ResourceFilter{Search: "security"})
	byType := FilterResources(resources, ResourceFilter{TypeID: typeID(2)})
	for _, r := range got {
		assert.Contains(t, bySearch, r)
		assert.Contains(t, byType, r)
	}
}

func TestFilterResourcesSearchMatchesContent(t *testing.T) {
	got := FilterResources(sampleResources(), ResourceFilter{Search: "zero trust"})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestFilterResourcesNilTypeIDExcluded(t *testing.T) {
	// Resource 3 has no type; a type filter must not match it
	got := FilterResources(sampleResources(), ResourceFilter{TypeID: typeID(1)})
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)
}

func TestSortEventsByDate(t *testing.T) {
	events := sampleEvents()

	SortEventsByDate(events, false)
	assert.Equal(t, "2000-01-01", events[0].EventDate)

	SortEventsByDate(events, true)
	assert.Equal(t, "2099-10-10", events[0].EventDate)
}

func TestSplitVendorTypes(t *testing.T) {
	assert.Equal(t, []string{"EDR", "SIEM", "Email Security"},
		SplitVendorTypes("EDR, SIEM,Email Security"))
	assert.Empty(t, SplitVendorTypes(""))
	assert.Equal(t, []string{"NDR"}, SplitVendorTypes(" NDR , "))
}

func TestFilterVendorsByCategory(t *testing.T) {
	vendors := []models.Vendor{
		{ID: 1, Name: "Acme Security", Type: "EDR, SIEM"},
		{ID: 2, Name: "Borealis", Type: "Email Security"},
	}

	got := FilterVendors(vendors, "", "siem")
	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].ID)

	got = FilterVendors(vendors, "borealis", "")
	require.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ID)

	// Both predicates must hold together
	assert.Empty(t, FilterVendors(vendors, "borealis", "SIEM"))
}
