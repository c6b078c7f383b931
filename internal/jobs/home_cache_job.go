package jobs

import (
	"context"
	"fmt"
	"time"

	"netpoleon-site/internal/notify"
	"netpoleon-site/internal/services"

	log "github.com/sirupsen/logrus"
)

// HomeCacheJob keeps the public home-page payload warm in the cache and
// reports a periodic summary of upcoming events.
type HomeCacheJob struct {
	site   *services.SiteService
	events *services.EventService
	sink   notify.Sink
}

func NewHomeCacheJob(site *services.SiteService, events *services.EventService, sink notify.Sink) *HomeCacheJob {
	return &HomeCacheJob{site: site, events: events, sink: sink}
}

// Start begins the periodic cache warm
func (j *HomeCacheJob) Start(interval time.Duration) {
	go func() {
		// Run immediately on start
		ctx := context.Background()
		j.run(ctx)

		// Then run periodically
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			j.run(ctx)
		}
	}()
}

func (j *HomeCacheJob) run(ctx context.Context) {
	if err := j.site.WarmHomeCache(ctx); err != nil {
		log.Warnf("Home cache warm failed: %v", err)
	}

	events, err := j.events.ListEvents(ctx)
	if err != nil {
		log.Warnf("Event summary failed: %v", err)
		return
	}

	upcoming := 0
	now := time.Now()
	for _, e := range events {
		if services.DeriveEventStatus(e.EventDate, now) == services.StatusUpcoming {
			upcoming++
		}
	}
	j.sink.Notify(notify.Info("Home cache", fmt.Sprintf("Cache warmed; %d upcoming events", upcoming)))
}
