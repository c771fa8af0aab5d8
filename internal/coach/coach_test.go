package coach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/jonathan/career-comeback/internal/llm"
	"github.com/jonathan/career-comeback/internal/types"
)

type fakeClient struct {
	chatReply     string
	chatErr       error
	generateReply string
	generateErr   error

	chatHistory []llm.Message
	chatMessage string
	prompts     []string
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.generateReply, f.generateErr
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	text, err := f.GenerateContent(ctx, prompt)
	return llm.CleanJSONBlock(text), err
}

func (f *fakeClient) Chat(_ context.Context, history []llm.Message, message string) (string, error) {
	f.chatHistory = history
	f.chatMessage = message
	return f.chatReply, f.chatErr
}

func (f *fakeClient) Close() error { return nil }

func rateLimited() error {
	return fmt.Errorf("failed to send chat message: %w", &googleapi.Error{Code: 429})
}

func turns(n int) []types.ChatTurn {
	out := make([]types.ChatTurn, n)
	for i := range out {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		out[i] = types.ChatTurn{Role: role, Message: fmt.Sprintf("turn %d", i)}
	}
	return out
}

func TestNormalizeContext(t *testing.T) {
	assert.Equal(t, "interview", NormalizeContext("interview"))
	assert.Equal(t, "general", NormalizeContext(""))
	assert.Equal(t, "general", NormalizeContext("break"))
}

func TestPersonaText(t *testing.T) {
	assert.Empty(t, PersonaText(nil))

	text := PersonaText(&types.CoachPersona{Name: "Sam", Skills: []string{"SQL", "Excel"}})
	assert.Equal(t, "\n\nUser context:\n- Name: Sam\n- Skills: SQL, Excel\n- Goal: Not specified\n- Career break: Not specified\n- Last role: Not specified", text)

	text = PersonaText(&types.CoachPersona{})
	assert.Contains(t, text, "- Name: Unknown")
}

func TestReply_Unconfigured(t *testing.T) {
	c := New(nil)

	assert.False(t, c.Configured())
	assert.Equal(t, Fallback("resume"), c.Reply(context.Background(), "resume", nil, nil, "help"))
	assert.Equal(t, Fallback("general"), c.Reply(context.Background(), "unknown", nil, nil, "help"))
}

func TestReply_ChatPrimesAndTrimsHistory(t *testing.T) {
	fc := &fakeClient{chatReply: "Here is my advice."}
	c := New(fc)

	got := c.Reply(context.Background(), "interview", &types.CoachPersona{Name: "Sam"}, turns(14), "How do I explain my gap?")
	assert.Equal(t, "Here is my advice.", got)
	assert.Equal(t, "How do I explain my gap?", fc.chatMessage)

	require.Len(t, fc.chatHistory, 2+HistoryTurns)
	assert.Equal(t, llm.RoleUser, fc.chatHistory[0].Role)
	assert.Equal(t, llm.RoleModel, fc.chatHistory[1].Role)
	assert.True(t, strings.HasPrefix(fc.chatHistory[1].Text, SystemPrompt("interview")))
	assert.Contains(t, fc.chatHistory[1].Text, "- Name: Sam")
	assert.True(t, strings.HasSuffix(fc.chatHistory[1].Text, "Understood. I'm ready to help."))

	// turn 4 is the oldest of the last ten; even turns are the user's.
	assert.Equal(t, llm.Message{Role: llm.RoleUser, Text: "turn 4"}, fc.chatHistory[2])
	assert.Equal(t, llm.Message{Role: llm.RoleModel, Text: "turn 5"}, fc.chatHistory[3])
	assert.Equal(t, "turn 13", fc.chatHistory[len(fc.chatHistory)-1].Text)
}

func TestReply_RateLimitedFallsBackToSinglePrompt(t *testing.T) {
	fc := &fakeClient{chatErr: rateLimited(), generateReply: "single prompt answer"}
	c := New(fc)

	got := c.Reply(context.Background(), "skills", nil, turns(8), "What now?")
	assert.Equal(t, "single prompt answer", got)
	require.Len(t, fc.prompts, 1)

	prompt := fc.prompts[0]
	assert.True(t, strings.HasPrefix(prompt, SystemPrompt("skills")))
	assert.NotContains(t, prompt, "turn 2")
	assert.Contains(t, prompt, "Conversation so far:\nassistant: turn 3\nuser: turn 4")
	assert.True(t, strings.HasSuffix(prompt, "User: What now?\n\nRespond helpfully:"))
}

func TestReply_ErrorsUseFallback(t *testing.T) {
	t.Run("non retryable chat error", func(t *testing.T) {
		fc := &fakeClient{chatErr: errors.New("bad request")}
		assert.Equal(t, Fallback("general"), New(fc).Reply(context.Background(), "general", nil, nil, "hi"))
		assert.Empty(t, fc.prompts)
	})

	t.Run("single prompt also fails", func(t *testing.T) {
		fc := &fakeClient{chatErr: rateLimited(), generateErr: llm.ErrModelsExhausted}
		assert.Equal(t, Fallback("resume"), New(fc).Reply(context.Background(), "resume", nil, nil, "hi"))
	})
}

func TestStaticBreakExplanation(t *testing.T) {
	e := StaticBreakExplanation("", nil)
	assert.Contains(t, e.LinkedIn, "Career Break | 2+ years\n")
	assert.Contains(t, e.LinkedIn, "upskill in emerging industry tools and")
	assert.NotEmpty(t, e.Short)
	assert.NotEmpty(t, e.Interview)

	e = StaticBreakExplanation("18 months", []string{"SQL", "Figma", "Python", "Excel"})
	assert.Contains(t, e.LinkedIn, "Career Break | 18 months\n")
	assert.Contains(t, e.LinkedIn, "upskill in SQL, Figma, Python and")
}

func TestBreakExplanation(t *testing.T) {
	req := types.BreakExplanationRequest{BreakReason: "caregiving"}

	t.Run("json reply", func(t *testing.T) {
		fc := &fakeClient{generateReply: "Sure!\n```json\n{\"short\": \"s\", \"interview\": \"i\", \"linkedin\": \"l\"}\n```"}
		got := New(fc).BreakExplanation(context.Background(), req, []string{"SQL"})

		assert.Equal(t, types.BreakExplanation{Short: "s", Interview: "i", LinkedIn: "l"}, got)
		require.Len(t, fc.prompts, 1)
		assert.Contains(t, fc.prompts[0], "- Break reason: caregiving")
		assert.Contains(t, fc.prompts[0], "- Duration: 2+ years")
		assert.Contains(t, fc.prompts[0], "- Skills maintained/gained: SQL")
	})

	t.Run("plain text reply", func(t *testing.T) {
		fc := &fakeClient{generateReply: "Be honest and brief."}
		got := New(fc).BreakExplanation(context.Background(), req, nil)

		assert.Equal(t, "Be honest and brief.", got.Short)
		assert.Equal(t, got.Short, got.Interview)
		assert.Equal(t, got.Short, got.LinkedIn)
		assert.Contains(t, fc.prompts[0], "various professional skills")
	})

	t.Run("model error", func(t *testing.T) {
		fc := &fakeClient{generateErr: errors.New("boom")}
		got := New(fc).BreakExplanation(context.Background(), types.BreakExplanationRequest{Duration: "1 year"}, nil)
		assert.Equal(t, StaticBreakExplanation("1 year", nil), got)
	})

	t.Run("unconfigured", func(t *testing.T) {
		got := New(nil).BreakExplanation(context.Background(), req, []string{"SQL"})
		assert.Equal(t, StaticBreakExplanation("", []string{"SQL"}), got)
	})
}

func TestReviewResume(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		got := New(nil).ReviewResume(context.Background(), "cv", nil)
		assert.Equal(t, 72, got.Score)
		assert.Equal(t, 68, got.OverallChance)
		assert.Equal(t, 78, got.CategoryScores.Brevity)
		assert.True(t, *got.ATSFriendly)
	})

	t.Run("full reply", func(t *testing.T) {
		fc := &fakeClient{generateReply: `{"score": 81, "rating": "Very Good", "overall_chance": 74,
			"category_scores": {"content": 80, "formatting": 85, "impact": 70, "keywords_ats": 75, "brevity": 90},
			"strengths": ["a"], "improvements": ["b"], "keywords": ["Go"], "missing_keywords": ["Kubernetes"],
			"suggestion": "s", "summary": "sum", "ats_friendly": false, "experience_level": "Senior"}`}
		got := New(fc).ReviewResume(context.Background(), "My CV text", &types.CoachPersona{Name: "Sam", Goal: "fast"})

		assert.Equal(t, 81, got.Score)
		assert.Equal(t, "Very Good", got.Rating)
		assert.Equal(t, 85, got.CategoryScores.Formatting)
		assert.Equal(t, []string{"Kubernetes"}, got.MissingKeywords)
		assert.False(t, *got.ATSFriendly)
		assert.Equal(t, "Senior", got.ExperienceLevel)

		require.Len(t, fc.prompts, 1)
		assert.Contains(t, fc.prompts[0], "Resume text:\nMy CV text")
		assert.Contains(t, fc.prompts[0], `User context: {"name":"Sam","goal":"fast"}`)
	})

	t.Run("sparse reply gets defaults", func(t *testing.T) {
		fc := &fakeClient{generateReply: `{"score": 0, "summary": "ok"}`}
		got := New(fc).ReviewResume(context.Background(), "cv", nil)

		assert.Equal(t, 70, got.Score)
		assert.Equal(t, "Good", got.Rating)
		assert.Equal(t, 60, got.OverallChance)
		assert.Equal(t, &types.CategoryScores{Content: 70, Formatting: 70, Impact: 65, KeywordsATS: 60, Brevity: 70}, got.CategoryScores)
		assert.Equal(t, []string{}, got.Strengths)
		assert.True(t, *got.ATSFriendly)
		assert.Equal(t, "Mid-Level", got.ExperienceLevel)
		assert.Equal(t, "ok", got.Summary)
	})

	t.Run("no json", func(t *testing.T) {
		fc := &fakeClient{generateReply: "Looks solid overall."}
		got := New(fc).ReviewResume(context.Background(), "cv", nil)

		assert.Equal(t, 70, got.Score)
		assert.Equal(t, "Looks solid overall.", got.Suggestion)
		assert.Equal(t, "Unknown", got.ExperienceLevel)
	})

	t.Run("model error", func(t *testing.T) {
		fc := &fakeClient{generateErr: errors.New("boom")}
		got := New(fc).ReviewResume(context.Background(), "cv", nil)

		assert.Equal(t, 0, got.Score)
		assert.Equal(t, "Error", got.Rating)
		assert.False(t, *got.ATSFriendly)
	})
}
