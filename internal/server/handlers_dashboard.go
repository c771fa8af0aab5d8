package server

import (
	"net/http"

	"github.com/jonathan/career-comeback/internal/dashboard"
	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/roadmap"
	"github.com/jonathan/career-comeback/internal/types"
)

// metricsView adds live values to the stored metrics. ProfileStrength
// shadows the stored one.
type metricsView struct {
	*db.Metrics
	ProfileStrength int            `json:"profile_strength"`
	RoadmapProgress types.Progress `json:"roadmap_progress"`
}

func (s *Server) handleGetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	metrics, err := s.store.EnsureMetrics(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch dashboard metrics.")
		return
	}
	done, total, err := s.store.RoadmapCounts(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch dashboard metrics.")
		return
	}
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch dashboard metrics.")
		return
	}

	var signals *types.ProfileSignals
	if profile != nil {
		signals = &types.ProfileSignals{
			Headline:    profile.Headline,
			About:       profile.About,
			CareerBreak: profile.CareerBreak,
			Skills:      profile.Skills,
			OpenTo:      profile.OpenTo,
		}
	}

	jsonResponse(w, http.StatusOK, map[string]any{"metrics": metricsView{
		Metrics:         metrics,
		ProfileStrength: dashboard.ProfileStrength(signals),
		RoadmapProgress: roadmap.ProgressOf(done, total),
	}})
}

func (s *Server) handleUpdateMetrics(w http.ResponseWriter, r *http.Request) {
	var upd db.MetricsUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err, "Failed to update metrics.")
		return
	}

	metrics, err := s.store.UpdateMetrics(r.Context(), currentUser(r), upd)
	if err != nil {
		writeError(w, r, notFound(err, "Metrics"), "Failed to update metrics.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Metrics updated.", "metrics": metrics})
}

type confidenceRequest struct {
	Confidence *int `json:"confidence"`
}

func (s *Server) handleAddConfidence(w http.ResponseWriter, r *http.Request) {
	var req confidenceRequest
	err := decodeJSON(w, r, &req)
	if err == nil && (req.Confidence == nil || *req.Confidence < 0 || *req.Confidence > 100) {
		err = &ErrValidation{Message: "Confidence must be a number between 0 and 100."}
	}
	if err != nil {
		writeError(w, r, err, "Failed to log confidence.")
		return
	}

	history, err := s.store.AppendConfidence(r.Context(), currentUser(r), *req.Confidence)
	if err != nil {
		writeError(w, r, err, "Failed to log confidence.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"message":            "Confidence logged.",
		"confidence_history": history,
	})
}

func (s *Server) handleReminder(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"reminder": dashboard.ReminderFor(s.now())})
}
