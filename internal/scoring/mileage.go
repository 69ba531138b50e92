package scoring

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shrimpsizemoose/ironclad/internal/models"
)

type MileageLeaderboardEntry struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Walk  float64 `json:"walk"`
	Ruck  float64 `json:"ruck"`
	Run   float64 `json:"run"`
}

// BuildMileageLeaderboard sums distance per participant and activity.
// Activities other than walk, ruck and run count toward nothing, and a
// participant left with no counted distance is not listed. Ties keep the
// order in which participants first appear.
func BuildMileageLeaderboard(entries []models.MileageEntry) []MileageLeaderboardEntry {
	byName := make(map[string]*MileageLeaderboardEntry)
	var order []string

	for _, e := range entries {
		row, ok := byName[e.Name]
		if !ok {
			row = &MileageLeaderboardEntry{Name: e.Name}
			byName[e.Name] = row
			order = append(order, e.Name)
		}

		switch {
		case strings.EqualFold(e.Activity, models.ActivityWalk):
			row.Walk += e.Distance
		case strings.EqualFold(e.Activity, models.ActivityRuck):
			row.Ruck += e.Distance
		case strings.EqualFold(e.Activity, models.ActivityRun):
			row.Run += e.Distance
		}
	}

	board := make([]MileageLeaderboardEntry, 0, len(order))
	for _, name := range order {
		row := byName[name]
		row.Total = row.Walk + row.Ruck + row.Run
		if row.Total <= 0 {
			continue
		}
		board = append(board, *row)
	}

	slices.SortStableFunc(board, func(a, b MileageLeaderboardEntry) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return board
}
