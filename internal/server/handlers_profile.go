package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-comeback/internal/db"
)

// profileView is a profile with its account fields and sub-sections.
type profileView struct {
	*db.Profile
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Experience     []db.Experience    `json:"experience"`
	Education      []db.Education     `json:"education"`
	Certifications []db.Certification `json:"certifications"`
}

// handleGetProfile returns the profile, creating an empty one on first access.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	profile, err := s.store.EnsureProfile(ctx, userID)
	if err != nil {
		writeError(w, r, err, "Failed to fetch profile.")
		return
	}

	view := profileView{Profile: profile}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.store.GetUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load user: %w", err)
		}
		if user != nil {
			view.Name, view.Email = user.Name, user.Email
		}
		return nil
	})
	g.Go(func() error {
		sections, err := loadSections(gctx, s.store, profile.ID)
		if err != nil {
			return err
		}
		view.Experience = sections.experience
		view.Education = sections.education
		view.Certifications = sections.certifications
		return nil
	})
	if err := g.Wait(); err != nil {
		writeError(w, r, err, "Failed to fetch profile.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"profile": view})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd db.ProfileUpdate
	if err := decodeJSON(w, r, &upd); err != nil {
		writeError(w, r, err, "Failed to update profile.")
		return
	}

	profile, err := s.store.UpsertProfile(r.Context(), currentUser(r), upd)
	if err != nil {
		writeError(w, r, notFound(err, "User"), "Failed to update profile.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Profile updated.", "profile": profile})
}

// sectionOps are the typed store calls for one profile sub-section, wrapped
// so the handlers can pick them by URL segment.
type sectionOps struct {
	label  string
	add    func(w http.ResponseWriter, r *http.Request, profileID uuid.UUID) (any, error)
	update func(w http.ResponseWriter, r *http.Request, profileID, id uuid.UUID) (any, error)
	remove func(ctx context.Context, profileID, id uuid.UUID) error
}

func newSectionOps[In any, Out any](
	label string,
	add func(context.Context, uuid.UUID, In) (*Out, error),
	update func(context.Context, uuid.UUID, uuid.UUID, In) (*Out, error),
	remove func(context.Context, uuid.UUID, uuid.UUID) error,
) sectionOps {
	return sectionOps{
		label: label,
		add: func(w http.ResponseWriter, r *http.Request, profileID uuid.UUID) (any, error) {
			var in In
			if err := decodeJSON(w, r, &in); err != nil {
				return nil, err
			}
			return add(r.Context(), profileID, in)
		},
		update: func(w http.ResponseWriter, r *http.Request, profileID, id uuid.UUID) (any, error) {
			var in In
			if err := decodeJSON(w, r, &in); err != nil {
				return nil, err
			}
			out, err := update(r.Context(), profileID, id, in)
			if err != nil {
				return nil, notFound(err, label)
			}
			return out, nil
		},
		remove: func(ctx context.Context, profileID, id uuid.UUID) error {
			return notFound(remove(ctx, profileID, id), label)
		},
	}
}

func (s *Server) profileSections() map[string]sectionOps {
	return map[string]sectionOps{
		"experience": newSectionOps("Experience entry",
			s.store.AddExperience, s.store.UpdateExperience, s.store.DeleteExperience),
		"education": newSectionOps("Education entry",
			s.store.AddEducation, s.store.UpdateEducation, s.store.DeleteEducation),
		"certifications": newSectionOps("Certification",
			s.store.AddCertification, s.store.UpdateCertification, s.store.DeleteCertification),
	}
}

// sectionTarget resolves the {section} segment and the caller's profile.
func (s *Server) sectionTarget(r *http.Request) (sectionOps, uuid.UUID, error) {
	ops, ok := s.profileSections()[chi.URLParam(r, "section")]
	if !ok {
		return sectionOps{}, uuid.Nil, &ErrNotFound{Resource: "Section"}
	}
	profile, err := s.store.GetProfile(r.Context(), currentUser(r))
	if err != nil {
		return sectionOps{}, uuid.Nil, err
	}
	if profile == nil {
		return sectionOps{}, uuid.Nil, &ErrNotFound{Resource: "Profile"}
	}
	return ops, profile.ID, nil
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	ops, profileID, err := s.sectionTarget(r)
	if err != nil {
		writeError(w, r, err, "Failed to add entry.")
		return
	}
	entry, err := ops.add(w, r, profileID)
	if err != nil {
		writeError(w, r, err, "Failed to add entry.")
		return
	}
	jsonResponse(w, http.StatusCreated, map[string]any{"message": ops.label + " added.", "data": entry})
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	ops, profileID, err := s.sectionTarget(r)
	if err != nil {
		writeError(w, r, err, "Failed to update entry.")
		return
	}
	id, err := pathID(r, "id", ops.label)
	if err != nil {
		writeError(w, r, err, "Failed to update entry.")
		return
	}
	entry, err := ops.update(w, r, profileID, id)
	if err != nil {
		writeError(w, r, err, "Failed to update entry.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": ops.label + " updated.", "data": entry})
}

func (s *Server) handleDeleteSection(w http.ResponseWriter, r *http.Request) {
	ops, profileID, err := s.sectionTarget(r)
	if err != nil {
		writeError(w, r, err, "Failed to delete entry.")
		return
	}
	id, err := pathID(r, "id", ops.label)
	if err != nil {
		writeError(w, r, err, "Failed to delete entry.")
		return
	}
	if err := ops.remove(r.Context(), profileID, id); err != nil {
		writeError(w, r, err, "Failed to delete entry.")
		return
	}
	jsonResponse(w, http.StatusOK, messageResponse{Message: ops.label + " removed."})
}
