package services

import (
	"context"
	"testing"

	"netpoleon-site/internal/models"
	"netpoleon-site/internal/notify"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens the shared in-memory database and clears the content
// tables so each test starts from an empty store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:                                   logger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Event{},
		&models.FeaturedEvent{},
		&models.ResourceType{},
		&models.Resource{},
		&models.FeaturedResource{},
		&models.Vendor{},
		&models.TeamMember{},
		&models.Slide{},
		&models.AnnouncementBar{},
		&models.AdminUser{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	for _, table := range []string{
		"featured_events", "events",
		"featured_resources", "resources", "resource_types",
		"vendors", "team_members", "slides", "announcement_bars", "admin_users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	return db
}

// recordInvalidator counts home-cache invalidations for assertions
type recordInvalidator struct {
	calls int
}

func (r *recordInvalidator) InvalidateHome(ctx context.Context) {
	r.calls++
}

// recordSink captures notifications for assertions
type recordSink struct {
	notes []notify.Notification
}

func (r *recordSink) Notify(n notify.Notification) {
	r.notes = append(r.notes, n)
}

func (r *recordSink) lastType() string {
	if len(r.notes) == 0 {
		return ""
	}
	return r.notes[len(r.notes)-1].Type
}
