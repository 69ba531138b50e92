package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/shrimpsizemoose/ironclad/internal/metrics"
	"github.com/shrimpsizemoose/ironclad/internal/models"
	"github.com/shrimpsizemoose/ironclad/internal/scoring"
	"github.com/shrimpsizemoose/ironclad/internal/source"
)

type Service struct {
	Config  *Config
	Sources *Sources
	cache   *redis.Client
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	cache, err := NewCache(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to init cache: %w", err)
	}

	sources, err := NewSources(ctx, config, cache)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		return nil, fmt.Errorf("failed to init sources: %w", err)
	}

	return &Service{
		Config:  config,
		Sources: sources,
		cache:   cache,
	}, nil
}

// NewServiceWithSources skips config loading and connection setup.
func NewServiceWithSources(config *Config, sources *Sources) *Service {
	return &Service{
		Config:  config,
		Sources: sources,
	}
}

type rowsFunc func(ctx context.Context, src source.Source) ([][]string, error)

func readRows(ctx context.Context, src source.Source) ([][]string, error) {
	return src.Rows(ctx)
}

// refreshRows goes past the cache when there is one.
func refreshRows(ctx context.Context, src source.Source) ([][]string, error) {
	if cached, ok := src.(*source.CachedSource); ok {
		return cached.Refresh(ctx)
	}
	return src.Rows(ctx)
}

// Snapshot fetches every configured sheet concurrently. Any failing fetch
// fails the whole snapshot.
func (s *Service) Snapshot(ctx context.Context) (*scoring.Snapshot, error) {
	return s.snapshot(ctx, readRows)
}

func (s *Service) snapshot(ctx context.Context, fetch rowsFunc) (*scoring.Snapshot, error) {
	var submissions, challenges, mileage [][]string

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		submissions, err = fetch(ctx, s.Sources.Submissions)
		return err
	})
	g.Go(func() (err error) {
		challenges, err = fetch(ctx, s.Sources.Challenges)
		return err
	})
	if s.Sources.Mileage != nil {
		g.Go(func() (err error) {
			mileage, err = fetch(ctx, s.Sources.Mileage)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch sheets: %w", err)
	}

	return &scoring.Snapshot{
		Submissions: models.SubmissionsFromRows(submissions),
		Challenges:  models.ChallengesFromRows(challenges),
		Mileage:     models.MileageFromRows(mileage),
	}, nil
}

// Standings fetches a snapshot and derives both leaderboards from it.
func (s *Service) Standings(ctx context.Context) (*scoring.Standings, error) {
	return s.standings(ctx, readRows)
}

// RefreshStandings is Standings with every cached sheet refetched first.
func (s *Service) RefreshStandings(ctx context.Context) (*scoring.Standings, error) {
	return s.standings(ctx, refreshRows)
}

func (s *Service) standings(ctx context.Context, fetch rowsFunc) (*scoring.Standings, error) {
	snapshot, err := s.snapshot(ctx, fetch)
	if err != nil {
		return nil, err
	}

	st := snapshot.Standings(s.Config.Scoring)
	metrics.LeaderboardParticipants.WithLabelValues("points").Set(float64(len(st.Leaderboard)))
	metrics.LeaderboardParticipants.WithLabelValues("mileage").Set(float64(len(st.MileageLeaderboard)))
	return st, nil
}

// SheetEditURL is where the redirect endpoint sends visitors.
func (s *Service) SheetEditURL() string {
	return source.EditURL(s.Config.Sheet.SpreadsheetID)
}

// SubmissionURL deep links a submission's sheet row.
func (s *Service) SubmissionURL(row int) string {
	return source.RowURL(s.Config.Sheet.SpreadsheetID, s.Config.Sheet.SubmissionsGID, row)
}

func (s *Service) Close() error {
	var errs []error

	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
