package handlers

import (
	"net/http"
	"strings"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/models"
	"github.com/shrimpsizemoose/ironclad/internal/scoring"
)

type rankedEntry struct {
	Rank   int           `json:"rank"`
	Name   string        `json:"name"`
	Slug   string        `json:"slug"`
	Points int           `json:"points"`
	Podium *scoring.Tier `json:"podium,omitempty"`
}

type challengeSections struct {
	Standard []models.ChallengePoints `json:"standard"`
	Special  []models.ChallengePoints `json:"special"`
}

type dashboardResponse struct {
	Route              Route                             `json:"route"`
	Leaderboard        []rankedEntry                     `json:"leaderboard"`
	Challenges         challengeSections                 `json:"challenges"`
	MileageLeaderboard []scoring.MileageLeaderboardEntry `json:"mileage_leaderboard"`
	MileageGoal        float64                           `json:"mileage_goal"`
	Tiers              []scoring.Tier                    `json:"tiers"`
	FormURL            string                            `json:"form_url,omitempty"`
	MileageFormURL     string                            `json:"mileage_form_url,omitempty"`
}

func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	route := ParseRoute(splitSegments(r.PathValue("segments")))

	st, err := h.service.Standings(r.Context())
	if err != nil {
		logger.Error.Printf("Failed to build standings: %v", err)
		http.Error(w, "Failed to fetch leaderboard", http.StatusBadGateway)
		return
	}

	sheet := h.service.Config.Sheet
	writeJSON(w, dashboardResponse{
		Route:              route,
		Leaderboard:        rankEntries(st.Leaderboard),
		Challenges:         splitSections(st.Challenges),
		MileageLeaderboard: st.MileageLeaderboard,
		MileageGoal:        st.Rules.MileageGoal,
		Tiers:              scoring.Tiers,
		FormURL:            sheet.FormURL,
		MileageFormURL:     sheet.MileageFormURL,
	})
}

func rankEntries(board []scoring.LeaderboardEntry) []rankedEntry {
	ranked := make([]rankedEntry, len(board))
	for i, e := range board {
		ranked[i] = rankedEntry{
			Rank:   i + 1,
			Name:   e.Name,
			Slug:   scoring.Slug(e.Name),
			Points: e.Points,
		}
		if tier, ok := scoring.PodiumFor(e.Points); ok {
			ranked[i].Podium = &tier
		}
	}
	return ranked
}

// splitSections puts anything not marked Special under Standard.
func splitSections(challenges []models.ChallengePoints) challengeSections {
	sections := challengeSections{
		Standard: []models.ChallengePoints{},
		Special:  []models.ChallengePoints{},
	}
	for _, c := range challenges {
		if strings.EqualFold(c.Section, models.SectionSpecial) {
			sections.Special = append(sections.Special, c)
		} else {
			sections.Standard = append(sections.Standard, c)
		}
	}
	return sections
}
