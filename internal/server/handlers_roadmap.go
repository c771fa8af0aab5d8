package server

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/dashboard"
	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/logger"
	"github.com/jonathan/career-comeback/internal/roadmap"
	"github.com/jonathan/career-comeback/internal/types"
)

const milestoneResource = "Milestone"

type roadmapResponse struct {
	Message  string           `json:"message,omitempty"`
	Roadmap  []db.RoadmapItem `json:"roadmap"`
	Progress types.Progress   `json:"progress"`
}

func newRoadmapResponse(items []db.RoadmapItem, message string) roadmapResponse {
	if items == nil {
		items = []db.RoadmapItem{}
	}
	done := 0
	for _, it := range items {
		if it.Done {
			done++
		}
	}
	return roadmapResponse{Message: message, Roadmap: items, Progress: roadmap.ProgressOf(done, len(items))}
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListRoadmap(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "Failed to fetch roadmap.")
		return
	}
	jsonResponse(w, http.StatusOK, newRoadmapResponse(items, ""))
}

type addMilestoneRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Week        string `json:"week"`
}

// handleAddMilestone appends a custom milestone after the existing ones.
func (s *Server) handleAddMilestone(w http.ResponseWriter, r *http.Request) {
	var req addMilestoneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to add milestone.")
		return
	}

	item, err := s.store.AddRoadmapItem(r.Context(), currentUser(r), req.Title, req.Description, req.Week)
	if err != nil {
		writeError(w, r, err, "Failed to add milestone.")
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{"message": "Milestone added.", "milestone": item})
}

// handleGenerateRoadmap rebuilds the roadmap from the stored profile and
// onboarding answers.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	snap, err := loadSnapshot(ctx, s.store, userID, true)
	if err != nil {
		writeError(w, r, err, "Failed to regenerate roadmap.")
		return
	}
	if snap.onboarding == nil && !snap.hasProfileSignals() {
		writeError(w, r, &ErrPrerequisite{Message: "Complete onboarding or update your profile first."},
			"Failed to regenerate roadmap.")
		return
	}

	items, err := s.store.ReplaceRoadmap(ctx, userID, roadmap.Generate(snap.baseProfile(), snap.onboarding.Answers()))
	if err != nil {
		writeError(w, r, err, "Failed to regenerate roadmap.")
		return
	}
	jsonResponse(w, http.StatusOK, newRoadmapResponse(items, "Roadmap regenerated based on your profile."))
}

type toggleMilestoneRequest struct {
	Done *bool `json:"done"`
}

// handleToggleMilestone flips done, or sets it when the body says so, and
// re-scores the comeback score from roadmap progress.
func (s *Server) handleToggleMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	id, err := pathID(r, "id", milestoneResource)
	if err != nil {
		writeError(w, r, err, "Failed to update milestone.")
		return
	}
	var req toggleMilestoneRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to update milestone.")
		return
	}

	item, err := s.store.SetRoadmapDone(ctx, userID, id, req.Done)
	if err != nil {
		writeError(w, r, notFound(err, milestoneResource), "Failed to update milestone.")
		return
	}

	s.rescoreFromRoadmap(ctx, userID)

	message := "Milestone updated."
	if req.Done == nil {
		message = "Milestone toggled."
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": message, "milestone": item})
}

// rescoreFromRoadmap is best effort: a failure is logged and the toggle
// still succeeds.
func (s *Server) rescoreFromRoadmap(ctx context.Context, userID uuid.UUID) {
	log := logger.C(ctx)

	done, total, err := s.store.RoadmapCounts(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to count roadmap for rescore")
		return
	}
	metrics, err := s.store.EnsureMetrics(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load metrics for rescore")
		return
	}
	score, ok := dashboard.RescoreFromProgress(metrics.ComebackScore, done, total)
	if !ok || score == metrics.ComebackScore {
		return
	}
	if err := s.store.SetComebackScore(ctx, userID, score); err != nil {
		log.Warn().Err(err).Msg("failed to store comeback score")
	}
}

func (s *Server) handleUpdateMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", milestoneResource)
	if err != nil {
		writeError(w, r, err, "Failed to update milestone.")
		return
	}
	var upd db.RoadmapItemUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err, "Failed to update milestone.")
		return
	}

	item, err := s.store.UpdateRoadmapItem(r.Context(), currentUser(r), id, upd)
	if err != nil {
		writeError(w, r, notFound(err, milestoneResource), "Failed to update milestone.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Milestone updated.", "milestone": item})
}

func (s *Server) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", milestoneResource)
	if err != nil {
		writeError(w, r, err, "Failed to delete milestone.")
		return
	}
	if err := s.store.DeleteRoadmapItem(r.Context(), currentUser(r), id); err != nil {
		writeError(w, r, notFound(err, milestoneResource), "Failed to delete milestone.")
		return
	}
	jsonResponse(w, http.StatusOK, messageResponse{Message: "Milestone deleted."})
}
