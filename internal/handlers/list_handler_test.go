package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/repository"
	"netpoleon-site/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type nopSink struct{}

func (nopSink) Notify(notify.Notification) {}

// setupListRouter builds the public list routes on a clean store
func setupListRouter(t *testing.T) (*gin.Engine, *repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:                                   logger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Event{}, &models.FeaturedEvent{}, &models.Vendor{}))
	for _, table := range []string{"featured_events", "events", "vendors"} {
		db.Exec("DELETE FROM " + table)
	}

	repo := repository.NewRepository(db)
	eventService := services.NewEventService(repo, nopSink{}, nil)
	vendorService := services.NewVendorService(repo, nopSink{})
	featuredService := services.NewFeaturedService(repo, nopSink{}, nil)

	router := gin.New()
	router.GET("/api/events", NewEventHandler(eventService, featuredService).GetEvents)
	router.GET("/api/vendors", NewVendorHandler(vendorService).GetVendors)
	return router, repo
}

func listTitles(t *testing.T, router *gin.Engine, url, field string) []string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	out := make([]string, 0, len(body.Data))
	for _, item := range body.Data {
		out = append(out, item[field].(string))
	}
	return out
}

func TestGetEventsOrderParam(t *testing.T) {
	router, repo := setupListRouter(t)
	ctx := context.Background()

	for _, e := range []models.Event{
		{Title: "Past Summit", EventDate: "2000-01-01"},
		{Title: "Security Conference", EventDate: "2099-10-10"},
		{Title: "Partner Day", EventDate: "2026-06-15"},
	} {
		event := e
		require.NoError(t, repo.CreateEvent(ctx, &event))
	}

	// Default order is newest first
	assert.Equal(t,
		[]string{"Security Conference", "Partner Day", "Past Summit"},
		listTitles(t, router, "/api/events", "title"))

	// ?order=oldest reverses it
	assert.Equal(t,
		[]string{"Past Summit", "Partner Day", "Security Conference"},
		listTitles(t, router, "/api/events?order=oldest", "title"))
}

func TestGetVendorsAlphabetical(t *testing.T) {
	router, repo := setupListRouter(t)
	ctx := context.Background()

	for _, v := range []models.Vendor{
		{Name: "zscaler"},
		{Name: "Arista"},
		{Name: "Fortinet"},
	} {
		vendor := v
		require.NoError(t, repo.CreateVendor(ctx, &vendor))
	}

	// Case does not affect the directory order
	assert.Equal(t,
		[]string{"Arista", "Fortinet", "zscaler"},
		listTitles(t, router, "/api/vendors", "name"))
}
