package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/server/middleware"
)

// messageResponse is the body of mutations that return only a confirmation.
type messageResponse struct {
	Message string `json:"message"`
}

// currentUser returns the authenticated user. Routes that call it sit behind
// the auth middleware.
func currentUser(r *http.Request) uuid.UUID {
	id, _ := middleware.GetUserID(r)
	return id
}

// pathID parses a UUID URL parameter. A malformed ID cannot match any row,
// so it is reported as not found.
func pathID(r *http.Request, param, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, &ErrNotFound{Resource: resource}
	}
	return id, nil
}

// queryInt reads a positive integer query parameter, clamped to max.
func queryInt(r *http.Request, key string, fallback, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return min(v, max)
}
