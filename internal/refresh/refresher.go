package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/app"
	"github.com/shrimpsizemoose/ironclad/internal/metrics"
)

// Refresher refetches every sheet on a cron schedule so the cache stays warm
// and the participant gauges stay current.
type Refresher struct {
	service   *app.Service
	scheduler *gocron.Scheduler
	timeout   time.Duration
}

func New(service *app.Service) (*Refresher, error) {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	r := &Refresher{
		service:   service,
		scheduler: scheduler,
		timeout:   2 * service.Config.Sources.Timeout.Duration,
	}

	_, err := scheduler.Cron(service.Config.Refresh.Schedule).Do(r.tick)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule refresh %q: %w", service.Config.Refresh.Schedule, err)
	}
	return r, nil
}

func (r *Refresher) Start() {
	r.scheduler.StartAsync()
}

func (r *Refresher) Stop() {
	r.scheduler.Stop()
}

func (r *Refresher) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.RunOnce(ctx); err != nil {
		logger.Error.Printf("Refresh failed: %v", err)
	}
}

// RunOnce refetches all sheets past the cache and rebuilds the standings.
func (r *Refresher) RunOnce(ctx context.Context) error {
	st, err := r.service.RefreshStandings(ctx)
	if err != nil {
		metrics.RefreshRuns.WithLabelValues("error").Inc()
		return err
	}

	metrics.RefreshRuns.WithLabelValues("ok").Inc()
	logger.Info.Printf(
		"Refreshed sheets: %d submissions, %d ranked, %d on distance",
		len(st.Submissions),
		len(st.Leaderboard),
		len(st.MileageLeaderboard),
	)
	return nil
}
