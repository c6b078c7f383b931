package handlers

import (
	"net/http"
	"strconv"
	"time"

	"netpoleon-site/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	events   *services.EventService
	featured *services.FeaturedService
}

func NewEventHandler(events *services.EventService, featured *services.FeaturedService) *EventHandler {
	return &EventHandler{events: events, featured: featured}
}

// parseID reads a numeric :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// GetEvents returns all events with derived status, filtered by an optional
// search term. ?order=oldest reverses the default newest-first order.
func (h *EventHandler) GetEvents(c *gin.Context) {
	search := c.Query("search")
	newestFirst := c.Query("order") != "oldest"

	events, err := h.events.ListEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	filtered := services.FilterEvents(events, search)
	services.SortEventsByDate(filtered, newestFirst)
	withStatus := services.AttachEventStatus(filtered, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    withStatus,
		"count":   len(withStatus),
		"label":   services.EventCountLabel(len(withStatus)),
	})
}

// GetEventByID returns a single event with derived status
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.events.GetEvent(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": services.EventWithStatus{
			Event:  *event,
			Status: services.DeriveEventStatus(event.EventDate, time.Now()),
		},
	})
}

// GetFeaturedEvent returns the featured-event rows (0 or 1)
func (h *EventHandler) GetFeaturedEvent(c *gin.Context) {
	featured, err := h.featured.ListFeaturedEvents(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    featured,
	})
}

// CreateEvent creates a new event (admin only)
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.CreateEvent(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    event,
	})
}

// UpdateEvent applies a partial update to an event (admin only)
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update services.EventUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.UpdateEvent(c.Request.Context(), id, update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    event,
	})
}

// DeleteEvent removes an event (admin only)
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.events.DeleteEvent(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ToggleFeaturedEvent flips whether an event is the home-page feature
// (admin only)
func (h *EventHandler) ToggleFeaturedEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	nowFeatured, err := h.featured.ToggleFeaturedEvent(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle featured event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"featured": nowFeatured,
	})
}
