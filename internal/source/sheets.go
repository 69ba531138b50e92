package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads a range through the Sheets API instead of the public
// CSV export. Values come back formatted, the same text the export holds,
// but trailing empty cells are omitted by the API.
type SheetsSource struct {
	name          string
	spreadsheetID string
	readRange     string
	sheetsService *sheets.Service
}

func NewSheetsService(ctx context.Context, credentialsPath string) (*sheets.Service, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return svc, nil
}

func NewSheetsSource(name string, svc *sheets.Service, spreadsheetID, readRange string) *SheetsSource {
	return &SheetsSource{
		name:          name,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		sheetsService: svc,
	}
}

func (s *SheetsSource) Name() string {
	return s.name
}

func (s *SheetsSource) Rows(ctx context.Context) (rows [][]string, err error) {
	defer observeFetch(s.name, time.Now(), &err)

	resp, err := s.sheetsService.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s range %s: %w", s.name, s.readRange, err)
	}

	return valuesToRows(resp.Values), nil
}

func valuesToRows(values [][]interface{}) [][]string {
	if len(values) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, cell := range v {
			row[i] = strings.TrimSpace(fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows
}
