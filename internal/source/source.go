package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/metrics"
)

var ErrUnexpectedStatus = errors.New("unexpected status from sheet export")

// Source delivers the rows of one sheet tab, header row included.
type Source interface {
	Name() string
	Rows(ctx context.Context) ([][]string, error)
}

type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

func NewHTTPSource(name, url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Rows(ctx context.Context) (rows [][]string, err error) {
	defer observeFetch(s.name, time.Now(), &err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", s.name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", ErrUnexpectedStatus, s.name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s body: %w", s.name, err)
	}
	logger.Debug.Printf("Fetched %d bytes for %s", len(body), s.name)

	return ParseCSV(string(body)), nil
}

func observeFetch(name string, start time.Time, err *error) {
	outcome := "ok"
	if *err != nil {
		outcome = "error"
	}
	metrics.SourceFetchDuration.WithLabelValues(name, outcome).Observe(time.Since(start).Seconds())
}
