package scoring

import "github.com/shrimpsizemoose/ironclad/internal/models"

// PointLookup maps an activity name to its point value. It is built once per
// snapshot and never modified afterwards.
type PointLookup struct {
	points map[string]int
}

// NewPointLookup walks challenges in sheet order; a repeated activity takes
// the value of its last row.
func NewPointLookup(challenges []models.ChallengePoints) PointLookup {
	points := make(map[string]int, len(challenges))
	for _, c := range challenges {
		points[c.Activity] = c.Points
	}
	return PointLookup{points: points}
}

// Points is 0 for activities missing from the table.
func (l PointLookup) Points(activity string) int {
	return l.points[activity]
}
