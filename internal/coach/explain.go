package coach

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/career-comeback/internal/llm"
	"github.com/jonathan/career-comeback/internal/prompts"
	"github.com/jonathan/career-comeback/internal/types"
)

const (
	defaultBreakReason   = "personal/caregiving"
	defaultBreakDuration = "2+ years"
	defaultPromptSkills  = "various professional skills"
	defaultUpskillTopics = "emerging industry tools"
	fallbackSkillCount   = 3
)

// StaticBreakExplanation is the explanation given without a model. The
// LinkedIn text names the duration and up to three skills.
func StaticBreakExplanation(duration string, skills []string) types.BreakExplanation {
	if len(skills) > fallbackSkillCount {
		skills = skills[:fallbackSkillCount]
	}
	return types.BreakExplanation{
		Short:     prompts.Coach("fallback-break-short"),
		Interview: prompts.Coach("fallback-break-interview"),
		LinkedIn: prompts.Format(prompts.Coach("fallback-break-linkedin"), map[string]string{
			"Duration": orDefault(duration, defaultBreakDuration),
			"Skills":   orDefault(strings.Join(skills, ", "), defaultUpskillTopics),
		}),
	}
}

// BreakExplanation drafts three framings of a career break. A reply without a
// JSON object is used verbatim for all three.
func (c *Coach) BreakExplanation(ctx context.Context, req types.BreakExplanationRequest, skills []string) types.BreakExplanation {
	if !c.Configured() {
		return StaticBreakExplanation(req.Duration, skills)
	}

	prompt := prompts.Format(prompts.Coach("break-explanation"), map[string]string{
		"BreakReason": orDefault(req.BreakReason, defaultBreakReason),
		"Duration":    orDefault(req.Duration, defaultBreakDuration),
		"Skills":      orDefault(strings.Join(skills, ", "), defaultPromptSkills),
	})
	text, err := c.client.GenerateContent(ctx, prompt)
	if err != nil {
		c.log.Error().Err(err).Msg("break explanation failed")
		return StaticBreakExplanation(req.Duration, skills)
	}

	if raw, ok := llm.ExtractJSONObject(text); ok {
		var out types.BreakExplanation
		err := json.Unmarshal([]byte(raw), &out)
		if err == nil {
			return out
		}
		c.log.Warn().Err(err).Msg("break explanation reply is not valid JSON")
	}
	return types.BreakExplanation{Short: text, Interview: text, LinkedIn: text}
}
