package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsSetType(t *testing.T) {
	assert.Equal(t, TypeSuccess, Success("Create event", "Event created").Type)
	assert.Equal(t, TypeError, Error("Create event", "Title is required").Type)
	assert.Equal(t, TypeInfo, Info("Home cache", "Cache warmed; 3 upcoming events").Type)

	n := Info("Home cache", "Cache warmed; 3 upcoming events")
	assert.Equal(t, "Home cache", n.Title)
	assert.Equal(t, "Cache warmed; 3 upcoming events", n.Message)
}
