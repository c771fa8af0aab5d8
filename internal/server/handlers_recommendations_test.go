package server

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/types"
)

type listRecommendationsResponse struct {
	Recommendations map[string][]annotatedRecommendation `json:"recommendations"`
}

func withAnalystProfile(t *testing.T, env *testEnv, token string) {
	t.Helper()
	rec := env.do(http.MethodPut, "/api/profile", map[string]any{
		"headline": "Data Analyst",
		"skills":   []string{"SQL", "Excel", "Tableau"},
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestListRecommendations(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup("Ada", "ada@example.com")
	withAnalystProfile(t, env, token)

	rec := env.do(http.MethodGet, "/api/recommendations", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[listRecommendationsResponse](t, rec)
	require.Len(t, resp.Recommendations, 3)
	require.NotEmpty(t, resp.Recommendations["direct"])
	for tier, recs := range resp.Recommendations {
		for i, r := range recs {
			assert.False(t, r.Saved, "%s/%d", tier, i)
			assert.Nil(t, r.SavedID)
			assert.NotNil(t, r.Gap)
			if i > 0 {
				assert.GreaterOrEqual(t, recs[i-1].Match, r.Match, "%s sorted by match", tier)
			}
		}
	}
}

func TestListRecommendations_CategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup("Ada", "ada@example.com")
	withAnalystProfile(t, env, token)

	rec := env.do(http.MethodGet, "/api/recommendations?category=adjacent", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[listRecommendationsResponse](t, rec)
	assert.Empty(t, resp.Recommendations["direct"])
	assert.NotEmpty(t, resp.Recommendations["adjacent"])
	assert.Empty(t, resp.Recommendations["replacement"])
	assert.Contains(t, rec.Body.String(), `"direct":[]`)

	rec = env.do(http.MethodGet, "/api/recommendations?category=astronaut", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[listRecommendationsResponse](t, rec)
	for _, recs := range resp.Recommendations {
		assert.Empty(t, recs)
	}
}

func TestSaveRecommendation_AnnotatesList(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.signup("Ada", "ada@example.com")
	withAnalystProfile(t, env, token)

	list := decodeBody[listRecommendationsResponse](t, env.do(http.MethodGet, "/api/recommendations", nil, token))
	target := list.Recommendations["direct"][0]

	rec := env.do(http.MethodPost, "/api/recommendations/"+target.ID+"/save", map[string]any{
		"title":    target.Title,
		"company":  target.Company,
		"match":    target.Match,
		"gap":      target.Gap,
		"salary":   target.Salary,
		"type":     target.Type,
		"desc":     target.Desc,
		"category": "direct",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	saved := decodeBody[struct {
		Message string    `json:"message"`
		Saved   bool      `json:"saved"`
		SavedID uuid.UUID `json:"saved_id"`
	}](t, rec)
	assert.Equal(t, "Recommendation saved.", saved.Message)
	assert.True(t, saved.Saved)
	require.Len(t, env.store.saved[userID], 1)
	assert.Equal(t, saved.SavedID, env.store.saved[userID][0].ID)

	list = decodeBody[listRecommendationsResponse](t, env.do(http.MethodGet, "/api/recommendations", nil, token))
	first := list.Recommendations["direct"][0]
	assert.True(t, first.Saved)
	require.NotNil(t, first.SavedID)
	assert.Equal(t, saved.SavedID, *first.SavedID)

	// same title under another tier is not marked
	for _, r := range list.Recommendations["adjacent"] {
		if r.Title == target.Title {
			assert.False(t, r.Saved)
		}
	}

	rec = env.do(http.MethodDelete, "/api/recommendations/"+saved.SavedID.String()+"/save", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Recommendation unsaved.","saved":false}`, rec.Body.String())
	assert.Empty(t, env.store.saved[userID])

	rec = env.do(http.MethodDelete, "/api/recommendations/"+saved.SavedID.String()+"/save", nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Saved recommendation not found.", errorMessage(t, rec))
}

func TestSaveRecommendation_Defaults(t *testing.T) {
	env := newTestEnv(t)
	token, userID := env.signup("Ada", "ada@example.com")

	rec := env.do(http.MethodPost, "/api/recommendations/direct-0/save", nil, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	require.Len(t, env.store.saved[userID], 1)
	s := env.store.saved[userID][0]
	assert.Equal(t, "Untitled Role", s.Title)
	assert.Equal(t, "Various", s.Company)
	assert.Equal(t, "Remote", s.Type)
	assert.Equal(t, "direct", s.Category)
	assert.Equal(t, db.StringArray{}, s.Gap)
}

func TestSaveRecommendation_Validation(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup("Ada", "ada@example.com")

	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"match too high", map[string]any{"match": 101}, "validation error: match - must be at most 100"},
		{"negative match", map[string]any{"match": -1}, "validation error: match - must be at least 0"},
		{"unknown category", map[string]any{"category": "lateral"}, "validation error: category - must be one of: direct adjacent replacement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/recommendations/x/save", tt.body, token)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, errorMessage(t, rec))
		})
	}

	rec := env.do(http.MethodPost, "/api/recommendations/x/save", "{not json", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, rec))
}

func TestListSavedRecommendations(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.signup("Ada", "ada@example.com")

	rec := env.do(http.MethodGet, "/api/recommendations/saved", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"saved":[]}`, rec.Body.String())

	for _, title := range []string{"Junior Data Analyst", "UX Researcher"} {
		rec = env.do(http.MethodPost, "/api/recommendations/x/save", map[string]any{
			"title": title, "gap": []string{"Python"}, "category": "adjacent",
		}, token)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec = env.do(http.MethodGet, "/api/recommendations/saved", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[struct {
		Saved []struct {
			RecommendationID uuid.UUID        `json:"recommendation_id"`
			Data             savedRole        `json:"data"`
			Workshops        []types.Workshop `json:"workshops"`
			Academies        []types.Academy  `json:"academies"`
		} `json:"saved"`
	}](t, rec)

	require.Len(t, resp.Saved, 2)
	assert.Equal(t, "UX Researcher", resp.Saved[0].Data.Title, "newest first")
	assert.Equal(t, "Junior Data Analyst", resp.Saved[1].Data.Title)
	assert.Equal(t, []string{"Python"}, resp.Saved[1].Data.Gap)
	assert.Equal(t, "adjacent", resp.Saved[1].Data.Category)
	for _, s := range resp.Saved {
		assert.NotEqual(t, uuid.Nil, s.RecommendationID)
		assert.NotEmpty(t, s.Workshops)
		assert.NotEmpty(t, s.Academies)
	}
}
