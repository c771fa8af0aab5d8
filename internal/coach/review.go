package coach

import (
	"context"
	"encoding/json"

	"github.com/jonathan/career-comeback/internal/llm"
	"github.com/jonathan/career-comeback/internal/prompts"
	"github.com/jonathan/career-comeback/internal/types"
)

// reviewReply mirrors the JSON the model is asked for. Pointers tell a
// missing field from a present one.
type reviewReply struct {
	Score           *int                  `json:"score"`
	Rating          string                `json:"rating"`
	OverallChance   *int                  `json:"overall_chance"`
	CategoryScores  *types.CategoryScores `json:"category_scores"`
	Strengths       []string              `json:"strengths"`
	Improvements    []string              `json:"improvements"`
	Keywords        []string              `json:"keywords"`
	MissingKeywords []string              `json:"missing_keywords"`
	Suggestion      string                `json:"suggestion"`
	Summary         string                `json:"summary"`
	ATSFriendly     *bool                 `json:"ats_friendly"`
	ExperienceLevel string                `json:"experience_level"`
}

// StaticResumeReview is the review given without a model.
func StaticResumeReview() types.ResumeReview {
	return types.ResumeReview{
		Score:         72,
		Rating:        "Good",
		OverallChance: 68,
		CategoryScores: &types.CategoryScores{
			Content:     75,
			Formatting:  70,
			Impact:      65,
			KeywordsATS: 72,
			Brevity:     78,
		},
		Strengths: []string{
			"Clear professional experience",
			"Good use of action verbs",
			"Relevant industry background",
		},
		Improvements: []string{
			"Add quantified achievements with metrics",
			"Include a career break narrative section",
			"Update skills section with current in-demand tools",
			"Add a strong professional summary at the top",
		},
		Keywords:        []string{"Leadership", "Project Management", "Communication", "Problem Solving"},
		MissingKeywords: []string{"Data Analysis", "Agile", "Cloud Computing"},
		Suggestion:      "Consider adding a brief, positive statement about your career break at the top of your resume. Frame it as an intentional decision that helped you grow.",
		Summary:         "Your CV shows solid professional experience. To strengthen it for a career comeback, focus on quantifying achievements, updating your skills section, and adding a confident career break narrative.",
		ATSFriendly:     ptr(true),
		ExperienceLevel: "Mid-Level",
	}
}

// failedResumeReview is returned when the model call fails outright.
func failedResumeReview() types.ResumeReview {
	return types.ResumeReview{
		Rating:          "Error",
		CategoryScores:  &types.CategoryScores{},
		Strengths:       []string{},
		Improvements:    []string{"Unable to analyze at this time. Please try again."},
		Keywords:        []string{},
		MissingKeywords: []string{},
		Suggestion:      "Please try uploading your CV again.",
		Summary:         "We couldn't analyze your CV right now. This might be a temporary issue. Please try again.",
		ATSFriendly:     ptr(false),
		ExperienceLevel: "Unknown",
	}
}

// unstructuredResumeReview wraps a reply that carried no JSON object.
func unstructuredResumeReview(text string) types.ResumeReview {
	return types.ResumeReview{
		Score:           70,
		Rating:          "Good",
		OverallChance:   60,
		CategoryScores:  &types.CategoryScores{},
		Strengths:       []string{},
		Improvements:    []string{},
		Keywords:        []string{},
		MissingKeywords: []string{},
		Suggestion:      text,
		ATSFriendly:     ptr(true),
		ExperienceLevel: "Unknown",
	}
}

// ReviewResume scores resume text. persona is serialized into the prompt as
// extra context and may be nil.
func (c *Coach) ReviewResume(ctx context.Context, resumeText string, persona *types.CoachPersona) types.ResumeReview {
	if !c.Configured() {
		return StaticResumeReview()
	}

	userContext := []byte("{}")
	if persona != nil {
		if b, err := json.Marshal(persona); err == nil {
			userContext = b
		}
	}
	prompt := prompts.Format(prompts.Coach("resume-review"), map[string]string{
		"ResumeText":  resumeText,
		"UserContext": string(userContext),
	})

	text, err := c.client.GenerateContent(ctx, prompt)
	if err != nil {
		c.log.Error().Err(err).Msg("resume review failed")
		return failedResumeReview()
	}

	raw, ok := llm.ExtractJSONObject(text)
	if !ok {
		return unstructuredResumeReview(text)
	}
	var reply reviewReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		c.log.Error().Err(err).Msg("resume review reply is not valid JSON")
		return failedResumeReview()
	}
	return reply.withDefaults()
}

// withDefaults fills absent or zero fields the way an unscored reply would
// be read: a zero score is treated as missing.
func (r reviewReply) withDefaults() types.ResumeReview {
	out := types.ResumeReview{
		Score:           nonZeroOr(r.Score, 70),
		Rating:          orDefault(r.Rating, "Good"),
		OverallChance:   nonZeroOr(r.OverallChance, 60),
		CategoryScores:  r.CategoryScores,
		Strengths:       nonNil(r.Strengths),
		Improvements:    nonNil(r.Improvements),
		Keywords:        nonNil(r.Keywords),
		MissingKeywords: nonNil(r.MissingKeywords),
		Suggestion:      r.Suggestion,
		Summary:         r.Summary,
		ATSFriendly:     r.ATSFriendly,
		ExperienceLevel: orDefault(r.ExperienceLevel, "Mid-Level"),
	}
	if out.CategoryScores == nil {
		out.CategoryScores = &types.CategoryScores{
			Content:     70,
			Formatting:  70,
			Impact:      65,
			KeywordsATS: 60,
			Brevity:     70,
		}
	}
	if out.ATSFriendly == nil {
		out.ATSFriendly = ptr(true)
	}
	return out
}

func nonZeroOr(v *int, fallback int) int {
	if v == nil || *v == 0 {
		return fallback
	}
	return *v
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func ptr[T any](v T) *T {
	return &v
}
