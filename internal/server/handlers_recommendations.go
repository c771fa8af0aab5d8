package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/recommend"
	"github.com/jonathan/career-comeback/internal/types"
)

// Snapshot defaults for fields a save request leaves out.
const (
	defaultSavedTitle    = "Untitled Role"
	defaultSavedCompany  = "Various"
	defaultSavedType     = "Remote"
	defaultSavedCategory = string(matching.TierDirect)
)

// annotatedRecommendation marks whether the user already saved a role.
type annotatedRecommendation struct {
	types.Recommendation
	Saved   bool       `json:"saved"`
	SavedID *uuid.UUID `json:"saved_id"`
}

type savedKey struct {
	title    string
	category string
}

// handleListRecommendations generates recommendations from stored data,
// optionally for one tier.
func (s *Server) handleListRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	snap, err := loadSnapshot(ctx, s.store, userID, true)
	if err != nil {
		writeError(w, r, err, "Failed to fetch recommendations.")
		return
	}
	saved, err := s.store.ListSavedRecommendations(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch recommendations.")
		return
	}

	savedIDs := make(map[savedKey]uuid.UUID, len(saved))
	for _, sr := range saved {
		k := savedKey{sr.Title, sr.Category}
		if _, ok := savedIDs[k]; !ok {
			savedIDs[k] = sr.ID
		}
	}

	recs := recommend.Generate(snap.recommendationProfile(r.URL.Query().Get("category")))
	tiers := []struct {
		tier matching.Tier
		recs []types.Recommendation
	}{
		{matching.TierDirect, recs.Direct},
		{matching.TierAdjacent, recs.Adjacent},
		{matching.TierReplacement, recs.Replacement},
	}

	out := make(map[string][]annotatedRecommendation, len(tiers))
	for _, t := range tiers {
		list := make([]annotatedRecommendation, 0, len(t.recs))
		for _, rec := range t.recs {
			a := annotatedRecommendation{Recommendation: rec}
			if id, ok := savedIDs[savedKey{rec.Title, string(t.tier)}]; ok {
				a.Saved = true
				a.SavedID = &id
			}
			list = append(list, a)
		}
		out[string(t.tier)] = list
	}

	jsonResponse(w, http.StatusOK, map[string]any{"recommendations": out})
}

// saveRecommendationRequest is the role snapshot sent by the client.
type saveRecommendationRequest struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Match    int      `json:"match" validate:"gte=0,lte=100"`
	Gap      []string `json:"gap"`
	Salary   string   `json:"salary"`
	Type     string   `json:"type"`
	Desc     string   `json:"desc"`
	Category string   `json:"category" validate:"omitempty,oneof=direct adjacent replacement"`
}

func (req saveRecommendationRequest) snapshot() db.SavedRecommendation {
	gap := req.Gap
	if gap == nil {
		gap = []string{}
	}
	return db.SavedRecommendation{
		Title:    orDefault(req.Title, defaultSavedTitle),
		Company:  orDefault(req.Company, defaultSavedCompany),
		Match:    req.Match,
		Gap:      gap,
		Salary:   req.Salary,
		Type:     orDefault(req.Type, defaultSavedType),
		Desc:     req.Desc,
		Category: orDefault(req.Category, defaultSavedCategory),
	}
}

// handleSaveRecommendation stores a snapshot. The generated ID in the path
// is not stable across requests, so only the body is used.
func (s *Server) handleSaveRecommendation(w http.ResponseWriter, r *http.Request) {
	var req saveRecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to save recommendation.")
		return
	}

	saved, err := s.store.SaveRecommendation(r.Context(), currentUser(r), req.snapshot())
	if err != nil {
		writeError(w, r, err, "Failed to save recommendation.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "Recommendation saved.",
		"saved":    true,
		"saved_id": saved.ID,
	})
}

// handleUnsaveRecommendation removes a snapshot by its saved ID.
func (s *Server) handleUnsaveRecommendation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Saved recommendation")
	if err != nil {
		writeError(w, r, err, "Failed to unsave recommendation.")
		return
	}
	if err := s.store.DeleteSavedRecommendation(r.Context(), currentUser(r), id); err != nil {
		writeError(w, r, notFound(err, "Saved recommendation"), "Failed to unsave recommendation.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Recommendation unsaved.", "saved": false})
}

// savedRole is the stored snapshot as the client sent it.
type savedRole struct {
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Match    int      `json:"match"`
	Gap      []string `json:"gap"`
	Salary   string   `json:"salary"`
	Type     string   `json:"type"`
	Desc     string   `json:"desc"`
	Category string   `json:"category"`
}

// savedView is a snapshot enriched with learning resources.
type savedView struct {
	RecommendationID uuid.UUID        `json:"recommendation_id"`
	CreatedAt        time.Time        `json:"created_at"`
	Data             savedRole        `json:"data"`
	Workshops        []types.Workshop `json:"workshops"`
	Academies        []types.Academy  `json:"academies"`
}

func (s *Server) handleListSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := s.store.ListSavedRecommendations(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "Failed to fetch saved recommendations.")
		return
	}

	views := make([]savedView, 0, len(saved))
	for _, sr := range saved {
		gap := []string(sr.Gap)
		if gap == nil {
			gap = []string{}
		}
		views = append(views, savedView{
			RecommendationID: sr.ID,
			CreatedAt:        sr.CreatedAt,
			Data: savedRole{
				Title:    sr.Title,
				Company:  sr.Company,
				Match:    sr.Match,
				Gap:      gap,
				Salary:   sr.Salary,
				Type:     sr.Type,
				Desc:     sr.Desc,
				Category: sr.Category,
			},
			Workshops: recommend.Workshops(sr.Title, gap),
			Academies: recommend.Academies(recommend.LearningDomain(sr.Title, gap)),
		})
	}
	jsonResponse(w, http.StatusOK, map[string]any{"saved": views})
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
