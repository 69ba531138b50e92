package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shrimpsizemoose/ironclad/internal/source"
)

type SourceType string

const (
	SourceTypeCSV       SourceType = "csv"
	SourceTypeSheetsAPI SourceType = "sheets_api"
)

// Sources are the sheet tabs a snapshot is built from.
type Sources struct {
	Submissions source.Source
	Challenges  source.Source
	// Mileage is nil when no distance sheet is configured.
	Mileage source.Source
}

func NewSources(ctx context.Context, config *Config, cache *redis.Client) (*Sources, error) {
	sourceType := SourceTypeCSV
	if config.UseSheetsAPI() {
		sourceType = SourceTypeSheetsAPI
	}

	var sources *Sources
	switch sourceType {
	case SourceTypeCSV:
		sources = newCSVSources(config)
	case SourceTypeSheetsAPI:
		s, err := newSheetsAPISources(ctx, config)
		if err != nil {
			return nil, err
		}
		sources = s
	default:
		return nil, fmt.Errorf("unknown source type: %s", sourceType)
	}

	if cache != nil {
		sources.wrap(func(src source.Source) source.Source {
			return source.NewCachedSource(src, cache, config.Cache.KeyPrefix, config.Cache.TTL.Duration)
		})
	}
	return sources, nil
}

func newCSVSources(config *Config) *Sources {
	timeout := config.Sources.Timeout.Duration
	sources := &Sources{
		Submissions: source.NewHTTPSource("submissions", config.SubmissionsURL(), timeout),
		Challenges:  source.NewHTTPSource("challenges", config.ChallengesURL(), timeout),
	}
	if config.HasMileage() {
		sources.Mileage = source.NewHTTPSource("mileage", config.MileageURL(), timeout)
	}
	return sources
}

func newSheetsAPISources(ctx context.Context, config *Config) (*Sources, error) {
	svc, err := source.NewSheetsService(ctx, config.SheetsAPI.CredentialsPath)
	if err != nil {
		return nil, err
	}

	id := config.Sheet.SpreadsheetID
	sources := &Sources{
		Submissions: source.NewSheetsSource("submissions", svc, id, config.SheetsAPI.SubmissionsRange),
		Challenges:  source.NewSheetsSource("challenges", svc, id, config.SheetsAPI.ChallengesRange),
	}
	if config.HasMileage() {
		sources.Mileage = source.NewSheetsSource("mileage", svc, id, config.SheetsAPI.MileageRange)
	}
	return sources, nil
}

func (s *Sources) wrap(fn func(source.Source) source.Source) {
	s.Submissions = fn(s.Submissions)
	s.Challenges = fn(s.Challenges)
	if s.Mileage != nil {
		s.Mileage = fn(s.Mileage)
	}
}
