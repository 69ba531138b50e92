package scoring

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/shrimpsizemoose/ironclad/internal/models"
)

var ErrParticipantNotFound = errors.New("participant not found")

// Layouts seen in the Timestamp column. Form responses use the first.
var timestampLayouts = []string{
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type SubmissionWithPoints struct {
	Challenge string `json:"challenge"`
	Points    int    `json:"points"`
	Timestamp string `json:"timestamp"`
	Notes     string `json:"notes"`
	Row       int    `json:"row"`
}

type MileageProgress struct {
	Total     float64 `json:"total"`
	Walk      float64 `json:"walk"`
	Ruck      float64 `json:"ruck"`
	Run       float64 `json:"run"`
	Goal      float64 `json:"goal"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
	Completed bool    `json:"completed"`
}

type ProfileView struct {
	Name              string                 `json:"name"`
	Points            int                    `json:"points"`
	Rank              int                    `json:"rank"`
	TotalParticipants int                    `json:"total_participants"`
	Submissions       []SubmissionWithPoints `json:"submissions"`
	Mileage           MileageProgress        `json:"mileage"`
	Podium            *Tier                  `json:"podium,omitempty"`
	NextTier          *TierProgress          `json:"next_tier,omitempty"`
}

// ProfileBySlug resolves slug against the leaderboard and builds the profile.
func (st *Standings) ProfileBySlug(slug string) (*ProfileView, error) {
	name, ok := ResolveSlug(slug, st.Leaderboard)
	if !ok {
		return nil, fmt.Errorf("%w: no one matches slug %q", ErrParticipantNotFound, slug)
	}
	return st.Profile(name)
}

// Profile builds the view for an exact leaderboard name.
func (st *Standings) Profile(name string) (*ProfileView, error) {
	rank, ok := st.Rank(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrParticipantNotFound, name)
	}
	entry := st.Leaderboard[rank-1]

	view := &ProfileView{
		Name:              entry.Name,
		Points:            entry.Points,
		Rank:              rank,
		TotalParticipants: len(st.Leaderboard),
		Submissions:       participantSubmissions(name, st.Submissions, st.Lookup),
		Mileage:           st.mileageProgress(name),
	}
	if tier, ok := PodiumFor(entry.Points); ok {
		view.Podium = &tier
	}
	if next, ok := NextTier(entry.Points); ok {
		view.NextTier = &next
	}
	return view, nil
}

func (st *Standings) mileageProgress(name string) MileageProgress {
	progress := MileageProgress{Goal: st.Rules.MileageGoal}
	for _, m := range st.MileageLeaderboard {
		if m.Name != name {
			continue
		}
		progress.Total = m.Total
		progress.Walk = m.Walk
		progress.Ruck = m.Ruck
		progress.Run = m.Run
		break
	}

	progress.Completed = progress.Total >= progress.Goal
	if progress.Goal > 0 {
		progress.Percent = min(100, progress.Total/progress.Goal*100)
	}
	progress.Remaining = max(0, progress.Goal-progress.Total)
	return progress
}

// participantSubmissions returns name's submissions, newest first.
// Timestamps that do not parse go last, in sheet order.
func participantSubmissions(name string, submissions []models.Submission, lookup PointLookup) []SubmissionWithPoints {
	type dated struct {
		sub    SubmissionWithPoints
		at     time.Time
		parsed bool
	}

	var rows []dated
	for _, s := range submissions {
		if s.Name != name {
			continue
		}
		at, parsed := parseTimestamp(s.Timestamp)
		rows = append(rows, dated{
			sub: SubmissionWithPoints{
				Challenge: s.Challenge,
				Points:    lookup.Points(s.Challenge),
				Timestamp: s.Timestamp,
				Notes:     s.Notes,
				Row:       s.Row,
			},
			at:     at,
			parsed: parsed,
		})
	}

	slices.SortStableFunc(rows, func(a, b dated) int {
		switch {
		case a.parsed && !b.parsed:
			return -1
		case !a.parsed && b.parsed:
			return 1
		case !a.parsed:
			return 0
		}
		return b.at.Compare(a.at)
	})

	out := make([]SubmissionWithPoints, len(rows))
	for i, r := range rows {
		out[i] = r.sub
	}
	return out
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
