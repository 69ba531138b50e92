package bot

import (
	"fmt"
	"strings"

	"github.com/shrimpsizemoose/ironclad/internal/scoring"
)

const recentSubmissions = 5

func formatTop(board []scoring.LeaderboardEntry, n int) string {
	if len(board) == 0 {
		return "No submissions yet."
	}

	var sb strings.Builder
	sb.WriteString("Leaderboard\n")
	for i, e := range board {
		if i >= n {
			break
		}
		fmt.Fprintf(&sb, "%d. %s - %d pts", i+1, e.Name, e.Points)
		if tier, ok := scoring.PodiumFor(e.Points); ok {
			fmt.Fprintf(&sb, " (%s)", tier.Name)
		}
		sb.WriteString("\n")
	}
	if len(board) > n {
		fmt.Fprintf(&sb, "...and %d more", len(board)-n)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatProfile(view *scoring.ProfileView) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%d pts, rank #%d of %d", view.Name, view.Points, view.Rank, view.TotalParticipants)
	if view.Podium != nil {
		fmt.Fprintf(&sb, ", %s", view.Podium.Name)
	}
	if view.NextTier != nil {
		fmt.Fprintf(&sb, "\n%d points to %s", view.NextTier.Remaining, view.NextTier.Next.Name)
	}

	if m := view.Mileage; m.Total > 0 {
		fmt.Fprintf(&sb, "\nDistance: %.1f / %.0f", m.Total, m.Goal)
		if m.Completed {
			sb.WriteString(" - completed")
		}
	}

	if len(view.Submissions) > 0 {
		sb.WriteString("\nRecent:")
		for i, s := range view.Submissions {
			if i >= recentSubmissions {
				break
			}
			fmt.Fprintf(&sb, "\n+%d %s", s.Points, s.Challenge)
		}
	}
	return sb.String()
}

func formatMiles(board []scoring.MileageLeaderboardEntry, goal float64) string {
	if len(board) == 0 {
		return "No miles logged yet."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Distance challenge (%.0f)\n", goal)
	for i, e := range board {
		fmt.Fprintf(&sb, "%d. %s - %.1f (walk %.1f, ruck %.1f, run %.1f)", i+1, e.Name, e.Total, e.Walk, e.Ruck, e.Run)
		if e.Total >= goal {
			sb.WriteString(" done")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
