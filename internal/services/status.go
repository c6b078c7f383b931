package services

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// EventStatus is the temporal classification of an event relative to today.
// It is derived on every read and never stored.
type EventStatus string

const (
	StatusPast     EventStatus = "Past"
	StatusToday    EventStatus = "Today"
	StatusUpcoming EventStatus = "Upcoming"
)

const dateLayout = "2006-01-02"

// NormalizeEventDate parses an admin-entered date in any common format and
// returns it as YYYY-MM-DD. Time-of-day, if present, is discarded.
func NormalizeEventDate(input string) (string, error) {
	if t, err := time.Parse(dateLayout, input); err == nil {
		return t.Format(dateLayout), nil
	}
	t, err := dateparse.ParseAny(input)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", input, err)
	}
	return t.Format(dateLayout), nil
}

// DeriveEventStatus classifies eventDate (YYYY-MM-DD) against now. Only
// calendar dates are compared: an event dated today is Today at any hour,
// and the answer can change between two calls made on different days.
func DeriveEventStatus(eventDate string, now time.Time) EventStatus {
	normalized, err := NormalizeEventDate(eventDate)
	if err != nil {
		// An unparseable date cannot be placed on the timeline; treat it as
		// not yet past so it stays visible.
		return StatusUpcoming
	}

	today := now.Format(dateLayout)
	switch {
	case normalized < today:
		return StatusPast
	case normalized == today:
		return StatusToday
	default:
		return StatusUpcoming
	}
}
