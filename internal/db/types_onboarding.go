package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-comeback/internal/types"
)

// Onboarding is a user's stored questionnaire answers.
type Onboarding struct {
	UserID           uuid.UUID   `json:"user_id"`
	CareerBreakYears string      `json:"career_break_years"`
	LastRole         string      `json:"last_role"`
	Industry         string      `json:"industry"`
	Skills           StringArray `json:"skills"`
	Confidence       int         `json:"confidence"`
	Goal             string      `json:"goal"`
	Completed        bool        `json:"completed"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Answers returns the engine-facing view of the stored answers.
func (o *Onboarding) Answers() types.Onboarding {
	if o == nil {
		return types.Onboarding{Skills: []string{}}
	}
	return types.Onboarding{
		CareerBreakYears: o.CareerBreakYears,
		LastRole:         o.LastRole,
		Industry:         o.Industry,
		Skills:           []string(o.Skills),
		Confidence:       o.Confidence,
		Goal:             o.Goal,
	}
}

// OnboardingUpdate is a partial edit; nil fields are left alone.
type OnboardingUpdate struct {
	CareerBreakYears *string      `json:"career_break_years,omitempty"`
	LastRole         *string      `json:"last_role,omitempty"`
	Industry         *string      `json:"industry,omitempty"`
	Skills           *StringArray `json:"skills,omitempty"`
	Confidence       *int         `json:"confidence,omitempty" validate:"omitempty,gte=0,lte=100"`
	Goal             *string      `json:"goal,omitempty"`
}

// OnboardingCompletion is everything written when a user submits the
// onboarding questionnaire.
type OnboardingCompletion struct {
	// Name, when set, replaces the account's display name.
	Name    string
	Answers types.Onboarding
	Roadmap []types.Milestone
	Metrics Metrics
}
