package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/ironclad/internal/models"
	"github.com/shrimpsizemoose/ironclad/internal/scoring"
)

func testStandings() *scoring.Standings {
	return (&scoring.Snapshot{
		Submissions: []models.Submission{
			{Timestamp: "1/10/2026 7:00:00", Name: "Alice Smith", Challenge: "Ruck", Row: 2},
			{Timestamp: "1/11/2026 7:00:00", Name: "Bob", Challenge: "Pushups", Row: 3},
		},
		Challenges: []models.ChallengePoints{
			{Section: "Special", Activity: "Ruck", Points: 60},
			{Section: "Standard", Activity: "Pushups", Points: 20},
		},
		Mileage: []models.MileageEntry{
			{Name: "Bob", Activity: "Walk", Distance: 40.3},
		},
	}).Standings(scoring.DefaultRules)
}

func TestFormatTop(t *testing.T) {
	st := testStandings()

	assert.Equal(t, "Leaderboard\n1. Alice Smith - 60 pts (Bronze)\n2. Bob - 20 pts", formatTop(st.Leaderboard, 10))
	assert.Equal(t, "Leaderboard\n1. Alice Smith - 60 pts (Bronze)\n...and 1 more", formatTop(st.Leaderboard, 1))
	assert.Equal(t, "No submissions yet.", formatTop(nil, 10))
}

func TestFindProfileAndFormat(t *testing.T) {
	st := testStandings()

	for _, query := range []string{"Alice Smith", "alice-smith", "ALICE smith"} {
		view, err := findProfile(st, query)
		require.NoError(t, err, query)
		assert.Equal(t, "Alice Smith", view.Name)
	}

	_, err := findProfile(st, "Carol")
	assert.ErrorIs(t, err, scoring.ErrParticipantNotFound)

	view, err := findProfile(st, "Bob")
	require.NoError(t, err)
	assert.Equal(t,
		"Bob\n20 pts, rank #2 of 2\n30 points to Bronze\nDistance: 40.3 / 100\nRecent:\n+20 Pushups",
		formatProfile(view),
	)
}

func TestFormatMiles(t *testing.T) {
	assert.Equal(t, "No miles logged yet.", formatMiles(nil, 100))
	assert.Equal(t,
		"Distance challenge (100)\n1. Bob - 100.0 (walk 60.0, ruck 40.0, run 0.0) done",
		formatMiles([]scoring.MileageLeaderboardEntry{{Name: "Bob", Total: 100, Walk: 60, Ruck: 40}}, 100),
	)
}
