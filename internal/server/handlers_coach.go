package server

import (
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-comeback/internal/coach"
	"github.com/jonathan/career-comeback/internal/types"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200

	roleUser      = "user"
	roleAssistant = "assistant"
)

// handleChat answers a coach message personalized with the user's data and
// stores both turns.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := currentUser(r)

	var req types.ChatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to generate AI response.")
		return
	}
	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, r, &ErrValidation{Message: "Message is required."}, "Failed to generate AI response.")
		return
	}
	chatContext := coach.NormalizeContext(req.Context)

	var (
		snap    *userSnapshot
		history []types.ChatTurn
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = loadSnapshot(gctx, s.store, userID, false)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.store.RecentTurns(gctx, userID, chatContext, coach.HistoryTurns)
		return err
	})
	if err := g.Wait(); err != nil {
		writeError(w, r, err, "Failed to generate AI response.")
		return
	}

	reply := s.coach.Reply(ctx, chatContext, snap.persona(), history, message)

	err := s.store.AddConversationTurns(ctx, userID, chatContext,
		types.ChatTurn{Role: roleUser, Message: message},
		types.ChatTurn{Role: roleAssistant, Message: reply},
	)
	if err != nil {
		writeError(w, r, err, "Failed to generate AI response.")
		return
	}

	jsonResponse(w, http.StatusOK, types.ChatResponse{Response: reply, Context: chatContext})
}

func (s *Server) handleBreakExplanation(w http.ResponseWriter, r *http.Request) {
	var req types.BreakExplanationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, "Failed to generate explanation.")
		return
	}

	o, err := s.store.GetOnboarding(r.Context(), currentUser(r))
	if err != nil {
		writeError(w, r, err, "Failed to generate explanation.")
		return
	}

	explanation := s.coach.BreakExplanation(r.Context(), req, o.Answers().Skills)
	jsonResponse(w, http.StatusOK, map[string]any{"explanation": explanation})
}

func (s *Server) handleResumeReview(w http.ResponseWriter, r *http.Request) {
	var req types.ResumeReviewRequest
	err := decodeJSON(w, r, &req)
	if err == nil && strings.TrimSpace(req.ResumeText) == "" {
		err = &ErrValidation{Message: "Resume text is required."}
	}
	if err != nil {
		writeError(w, r, err, "Failed to review resume.")
		return
	}

	snap, err := loadSnapshot(r.Context(), s.store, currentUser(r), false)
	if err != nil {
		writeError(w, r, err, "Failed to review resume.")
		return
	}

	review := s.coach.ReviewResume(r.Context(), strings.TrimSpace(req.ResumeText), snap.persona())
	jsonResponse(w, http.StatusOK, map[string]any{"review": review})
}

// handleHistory lists stored turns for one context, oldest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	chatContext := coach.NormalizeContext(r.URL.Query().Get("context"))
	limit := queryInt(r, "limit", defaultHistoryLimit, maxHistoryLimit)

	history, err := s.store.ListConversations(r.Context(), currentUser(r), chatContext, limit)
	if err != nil {
		writeError(w, r, err, "Failed to fetch chat history.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"history": history})
}

// handleClearHistory deletes one context's turns, or all of them when no
// context is given.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	chatContext := r.URL.Query().Get("context")
	if chatContext != "" {
		chatContext = coach.NormalizeContext(chatContext)
	}

	deleted, err := s.store.ClearConversations(r.Context(), currentUser(r), chatContext)
	if err != nil {
		writeError(w, r, err, "Failed to clear chat history.")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]any{"message": "Chat history cleared.", "deleted": deleted})
}
