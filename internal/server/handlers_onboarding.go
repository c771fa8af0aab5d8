package server

import (
	"net/http"

	"github.com/jonathan/career-comeback/internal/dashboard"
	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/roadmap"
	"github.com/jonathan/career-comeback/internal/types"
)

const defaultOnboardingConfidence = 50

// onboardingRequest is the questionnaire plus an optional display name.
type onboardingRequest struct {
	Name string `json:"name,omitempty"`
	types.Onboarding
}

func (s *Server) handleGetOnboarding(w http.ResponseWriter, r *http.Request) {
	o, err := s.store.GetOnboarding(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "Failed to fetch onboarding data.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"onboarding": o})
}

// handleSaveOnboarding stores the answers together with a regenerated roadmap
// and reset dashboard metrics. The store writes all of it or nothing.
func (s *Server) handleSaveOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	var req onboardingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to save onboarding data.")
		return
	}

	answers := req.Onboarding
	if answers.Skills == nil {
		answers.Skills = []string{}
	}
	stated := answers.Confidence
	if answers.Confidence == 0 {
		answers.Confidence = defaultOnboardingConfidence
	}

	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to save onboarding data.")
		return
	}
	snap := userSnapshot{profile: profile}

	saved, err := s.store.CompleteOnboarding(ctx, userID, db.OnboardingCompletion{
		Name:    req.Name,
		Answers: answers,
		Roadmap: roadmap.Generate(snap.baseProfile(), answers),
		Metrics: db.Metrics{
			ComebackScore:     dashboard.InitialComebackScore(stated, len(answers.Skills)),
			ConfidenceHistory: dashboard.InitialConfidenceHistory(stated),
			ProfileStrength:   dashboard.OnboardedProfileStrength,
			SkillsData:        dashboard.SkillLevels(answers.Skills),
		},
	})
	if err != nil {
		writeError(w, r, notFound(err, "User"), "Failed to save onboarding data.")
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"message":    "Onboarding completed successfully.",
		"onboarding": saved,
	})
}

func (s *Server) handleUpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	var upd db.OnboardingUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err, "Failed to update onboarding.")
		return
	}

	o, err := s.store.UpdateOnboarding(r.Context(), currentUser(r), upd)
	if err != nil {
		writeError(w, r, notFound(err, "Onboarding"), "Failed to update onboarding.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Onboarding updated.", "onboarding": o})
}
