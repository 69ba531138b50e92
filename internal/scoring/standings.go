package scoring

import "github.com/shrimpsizemoose/ironclad/internal/models"

// Snapshot is one fetch of the sheets, already mapped to records.
type Snapshot struct {
	Submissions []models.Submission
	Challenges  []models.ChallengePoints
	Mileage     []models.MileageEntry
}

// Standings is everything derived from a Snapshot. It is rebuilt for every
// request and shared by nobody.
type Standings struct {
	Rules              Rules
	Lookup             PointLookup
	Submissions        []models.Submission
	Challenges         []models.ChallengePoints
	Leaderboard        []LeaderboardEntry
	MileageLeaderboard []MileageLeaderboardEntry
}

func (s *Snapshot) Standings(rules Rules) *Standings {
	lookup := NewPointLookup(s.Challenges)
	mileage := BuildMileageLeaderboard(s.Mileage)

	return &Standings{
		Rules:              rules,
		Lookup:             lookup,
		Submissions:        s.Submissions,
		Challenges:         s.Challenges,
		Leaderboard:        BuildLeaderboard(s.Submissions, lookup, mileage, rules),
		MileageLeaderboard: mileage,
	}
}

// Rank is the 1-based leaderboard position of name. Equal points still get
// distinct, consecutive ranks.
func (st *Standings) Rank(name string) (int, bool) {
	for i, e := range st.Leaderboard {
		if e.Name == name {
			return i + 1, true
		}
	}
	return 0, false
}
