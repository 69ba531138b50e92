package models

const (
	SectionStandard = "Standard"
	SectionSpecial  = "Special"
)

// ChallengePoints is one row of the scoring table. Activity is the join key
// against Submission.Challenge.
type ChallengePoints struct {
	Section  string `json:"section"`
	Activity string `json:"activity"`
	Points   int    `json:"points"`
}

func ChallengesFromRows(rows [][]string) []ChallengePoints {
	data := dataRows(rows)
	challenges := make([]ChallengePoints, 0, len(data))
	for _, row := range data {
		challenges = append(challenges, ChallengePoints{
			Section:  cell(row, 0),
			Activity: cell(row, 1),
			Points:   parsePoints(cell(row, 2)),
		})
	}
	return challenges
}
