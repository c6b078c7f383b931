package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveEventStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventDate string
		want      EventStatus
	}{
		{"yesterday is past", "2025-06-14", StatusPast},
		{"same day is today", "2025-06-15", StatusToday},
		{"tomorrow is upcoming", "2025-06-16", StatusUpcoming},
		{"far future is upcoming", "2099-10-10", StatusUpcoming},
		{"far past is past", "2000-01-01", StatusPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveEventStatus(tt.eventDate, now))
		})
	}
}

// An event dated today stays Today at every hour of that day, including the
// edges around midnight.
func TestDeriveEventStatusIgnoresTimeOfDay(t *testing.T) {
	eventDate := "2025-06-15"

	hours := []time.Time{
		time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 9, 15, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC),
	}
	for _, now := range hours {
		assert.Equal(t, StatusToday, DeriveEventStatus(eventDate, now), "at %v", now)
	}

	// One second past midnight the same event is Past, not before
	assert.Equal(t, StatusPast, DeriveEventStatus(eventDate, time.Date(2025, 6, 16, 0, 0, 1, 0, time.UTC)))
}

func TestNormalizeEventDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-06-15", "2025-06-15"},
		{"Oct 10, 2099", "2099-10-10"},
		{"2025-06-15T10:30:00Z", "2025-06-15"},
		{"06/15/2025", "2025-06-15"},
	}

	for _, tt := range tests {
		got, err := NormalizeEventDate(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	_, err := NormalizeEventDate("not a date")
	assert.Error(t, err)
}
