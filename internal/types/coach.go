package types

// ChatRequest is a message sent to the career coach.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	Context string `json:"context,omitempty" validate:"omitempty,oneof=general interview resume skills"`
}

// ChatResponse is the coach's reply.
type ChatResponse struct {
	Response string `json:"response"`
	Context  string `json:"context"`
}

// ChatTurn is a single stored message in a coach conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// CoachPersona is the user context used to personalize coach prompts.
type CoachPersona struct {
	Name             string   `json:"name,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Goal             string   `json:"goal,omitempty"`
	CareerBreakYears string   `json:"career_break_years,omitempty"`
	LastRole         string   `json:"last_role,omitempty"`
	Industry         string   `json:"industry,omitempty"`
}

// BreakExplanationRequest asks for career break talking points.
type BreakExplanationRequest struct {
	BreakReason string `json:"break_reason,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// BreakExplanation holds three framings of the same career break.
type BreakExplanation struct {
	Short     string `json:"short"`
	Interview string `json:"interview"`
	LinkedIn  string `json:"linkedin"`
}

// ResumeReviewRequest carries plain resume text to review.
type ResumeReviewRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
}

// CategoryScores breaks a resume score down by aspect.
type CategoryScores struct {
	Content     int `json:"content"`
	Formatting  int `json:"formatting"`
	Impact      int `json:"impact"`
	KeywordsATS int `json:"keywords_ats"`
	Brevity     int `json:"brevity"`
}

// ResumeReview is a structured assessment of a resume.
type ResumeReview struct {
	Score           int             `json:"score"`
	Rating          string          `json:"rating"`
	OverallChance   int             `json:"overall_chance"`
	CategoryScores  *CategoryScores `json:"category_scores"`
	Strengths       []string        `json:"strengths"`
	Improvements    []string        `json:"improvements"`
	Keywords        []string        `json:"keywords"`
	MissingKeywords []string        `json:"missing_keywords"`
	Suggestion      string          `json:"suggestion"`
	Summary         string          `json:"summary"`
	ATSFriendly     *bool           `json:"ats_friendly"`
	ExperienceLevel string          `json:"experience_level"`
}
