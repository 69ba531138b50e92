package scoring

import (
	"cmp"
	"slices"

	"github.com/shrimpsizemoose/ironclad/internal/models"
)

type LeaderboardEntry struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// BuildLeaderboard totals challenge points per participant and adds the
// distance bonus for everyone on mileage at or past the goal. Pass a nil
// mileage board when there is no distance sheet.
//
// Anyone with a submission is listed, even at 0 points. Ties keep the order
// in which participants first appear: submissions first, then bonus-only
// participants in mileage board order.
func BuildLeaderboard(
	submissions []models.Submission,
	lookup PointLookup,
	mileage []MileageLeaderboardEntry,
	rules Rules,
) []LeaderboardEntry {
	totals := make(map[string]int)
	var order []string

	add := func(name string, points int) {
		if _, ok := totals[name]; !ok {
			order = append(order, name)
		}
		totals[name] += points
	}

	for _, sub := range submissions {
		add(sub.Name, lookup.Points(sub.Challenge))
	}

	for _, m := range mileage {
		if m.Total >= rules.MileageGoal {
			add(m.Name, rules.MileageBonus)
		}
	}

	board := make([]LeaderboardEntry, 0, len(order))
	for _, name := range order {
		board = append(board, LeaderboardEntry{Name: name, Points: totals[name]})
	}

	slices.SortStableFunc(board, func(a, b LeaderboardEntry) int {
		return cmp.Compare(b.Points, a.Points)
	})
	return board
}
