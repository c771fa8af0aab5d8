// Package coach is the AI career coach. It turns a user's context and chat
// history into model calls and degrades to canned replies whenever the model
// is unconfigured or failing, so callers never see a model error.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jonathan/career-comeback/internal/llm"
	"github.com/jonathan/career-comeback/internal/logger"
	"github.com/jonathan/career-comeback/internal/prompts"
	"github.com/jonathan/career-comeback/internal/types"
)

// Chat contexts. Each selects its own system prompt and fallback reply.
const (
	ContextGeneral   = "general"
	ContextInterview = "interview"
	ContextResume    = "resume"
	ContextSkills    = "skills"
)

const (
	// HistoryTurns is how many stored turns are replayed into a chat.
	HistoryTurns = 10
	// singlePromptTurns is how many turns are inlined when a rate-limited
	// chat is retried as a single prompt.
	singlePromptTurns = 5
)

// Coach answers career questions. A nil model client makes every call
// return its fallback.
type Coach struct {
	client llm.Client
	log    zerolog.Logger
}

// New creates a coach backed by client, which may be nil.
func New(client llm.Client) *Coach {
	return &Coach{client: client, log: *logger.Named("coach")}
}

// Configured reports whether a model client is attached.
func (c *Coach) Configured() bool {
	return c != nil && c.client != nil
}

// NormalizeContext maps an unknown or empty chat context to general.
func NormalizeContext(s string) string {
	switch s {
	case ContextGeneral, ContextInterview, ContextResume, ContextSkills:
		return s
	}
	return ContextGeneral
}

// Fallback returns the canned reply for a chat context.
func Fallback(chatContext string) string {
	return prompts.Coach("fallback-" + NormalizeContext(chatContext))
}

// SystemPrompt returns the instructions for a chat context.
func SystemPrompt(chatContext string) string {
	return prompts.Coach("system-" + NormalizeContext(chatContext))
}

// PersonaText renders the user context block appended to system prompts.
// A nil persona renders nothing.
func PersonaText(p *types.CoachPersona) string {
	if p == nil {
		return ""
	}
	return prompts.Format(prompts.Coach("persona"), map[string]string{
		"Name":        orDefault(p.Name, "Unknown"),
		"Skills":      orDefault(strings.Join(p.Skills, ", "), "Not specified"),
		"Goal":        orDefault(p.Goal, "Not specified"),
		"CareerBreak": orDefault(p.CareerBreakYears, "Not specified"),
		"LastRole":    orDefault(p.LastRole, "Not specified"),
	})
}

// Reply answers message within chatContext. history is oldest first; only the
// most recent turns are sent.
func (c *Coach) Reply(ctx context.Context, chatContext string, persona *types.CoachPersona, history []types.ChatTurn, message string) string {
	chatContext = NormalizeContext(chatContext)
	if !c.Configured() {
		return Fallback(chatContext)
	}

	system := SystemPrompt(chatContext) + PersonaText(persona)
	msgs := []llm.Message{
		{Role: llm.RoleUser, Text: prompts.Coach("chat-preamble")},
		{Role: llm.RoleModel, Text: system + prompts.Coach("chat-ack")},
	}
	for _, turn := range lastTurns(history, HistoryTurns) {
		role := llm.RoleModel
		if turn.Role == llm.RoleUser {
			role = llm.RoleUser
		}
		msgs = append(msgs, llm.Message{Role: role, Text: turn.Message})
	}

	text, err := c.client.Chat(ctx, msgs, message)
	if err == nil {
		return text
	}
	if !llm.IsRateLimited(err) {
		c.log.Error().Err(err).Str("context", chatContext).Msg("coach chat failed")
		return Fallback(chatContext)
	}

	c.log.Warn().Err(err).Str("context", chatContext).Msg("chat rate limited, retrying as single prompt")
	prompt := prompts.Format(prompts.Coach("chat-single-turn"), map[string]string{
		"System":  SystemPrompt(chatContext),
		"Persona": PersonaText(persona),
		"History": transcript(lastTurns(history, singlePromptTurns)),
		"Message": message,
	})
	text, err = c.client.GenerateContent(ctx, prompt)
	if err != nil {
		c.log.Error().Err(err).Str("context", chatContext).Msg("coach single prompt failed")
		return Fallback(chatContext)
	}
	return text
}

func lastTurns(history []types.ChatTurn, n int) []types.ChatTurn {
	if len(history) > n {
		return history[len(history)-n:]
	}
	return history
}

func transcript(turns []types.ChatTurn) string {
	lines := make([]string, len(turns))
	for i, t := range turns {
		lines[i] = fmt.Sprintf("%s: %s", t.Role, t.Message)
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
