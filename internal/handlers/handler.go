package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/ironclad/internal/app"
	"github.com/shrimpsizemoose/ironclad/internal/metrics"
)

type Handler struct {
	service *app.Service
}

func NewHandler(service *app.Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Register mounts every endpoint on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/dashboard", h.observe("/api/v1/dashboard", h.HandleDashboard))
	mux.HandleFunc("GET /api/v1/dashboard/{segments...}", h.observe("/api/v1/dashboard", h.HandleDashboard))
	mux.HandleFunc("GET /api/v1/profile/{slug}", h.observe("/api/v1/profile", h.HandleProfile))
	mux.HandleFunc("GET /sheet", h.observe("/sheet", h.HandleSheetRedirect))
	if h.service.Config.Server.RedirectRoot {
		mux.HandleFunc("GET /{$}", h.observe("/", h.HandleSheetRedirect))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// observe records request duration under a fixed path label so profile
// slugs do not explode the label space.
func (h *Handler) observe(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			metrics.APIRequestDuration.WithLabelValues(
				path,
				r.Method,
				strconv.Itoa(rec.status),
			).Observe(time.Since(start).Seconds())
		}()
		next(rec, r)
	}
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
