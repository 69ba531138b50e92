package handlers

import (
	"errors"
	"net/http"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/scoring"
)

type profileSubmission struct {
	scoring.SubmissionWithPoints
	SheetURL string `json:"sheet_url"`
}

type profileResponse struct {
	*scoring.ProfileView
	Slug        string              `json:"slug"`
	Submissions []profileSubmission `json:"submissions"`
}

func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		http.Error(w, "Invalid profile", http.StatusBadRequest)
		return
	}

	st, err := h.service.Standings(r.Context())
	if err != nil {
		logger.Error.Printf("Failed to build standings for profile %s: %v", slug, err)
		http.Error(w, "Failed to fetch leaderboard", http.StatusBadGateway)
		return
	}

	view, err := st.ProfileBySlug(slug)
	if errors.Is(err, scoring.ErrParticipantNotFound) {
		logger.Debug.Printf("Profile miss: %v", err)
		http.Error(w, "Participant not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Error.Printf("Failed to build profile %s: %v", slug, err)
		http.Error(w, "Failed to build profile", http.StatusInternalServerError)
		return
	}

	submissions := make([]profileSubmission, len(view.Submissions))
	for i, s := range view.Submissions {
		submissions[i] = profileSubmission{
			SubmissionWithPoints: s,
			SheetURL:             h.service.SubmissionURL(s.Row),
		}
	}

	writeJSON(w, profileResponse{
		ProfileView: view,
		Slug:        scoring.Slug(view.Name),
		Submissions: submissions,
	})
}
