package types

// ExperienceEntry is a past role. Only Title feeds the engines.
type ExperienceEntry struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
}

// EducationEntry is a degree or course of study.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution,omitempty"`
}

// Certification is a professional credential.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
}

// CareerProfile is the engine-facing view of a user: everything the
// recommendation and roadmap engines read, with no storage concerns.
// Missing fields are treated as empty.
type CareerProfile struct {
	Skills         []string          `json:"skills"`
	Goal           string            `json:"goal,omitempty"`
	Category       string            `json:"category,omitempty"`
	Headline       string            `json:"headline,omitempty"`
	TargetRoles    []string          `json:"target_roles,omitempty"`
	Experience     []ExperienceEntry `json:"experience,omitempty"`
	Education      []EducationEntry  `json:"education,omitempty"`
	Certifications []Certification   `json:"certifications,omitempty"`
	Industry       string            `json:"industry,omitempty"`
	LastRole       string            `json:"last_role,omitempty"`
}

// ExperienceTitles returns the non-empty experience titles in order.
func (p *CareerProfile) ExperienceTitles() []string {
	titles := make([]string, 0, len(p.Experience))
	for _, e := range p.Experience {
		if e.Title != "" {
			titles = append(titles, e.Title)
		}
	}
	return titles
}

// Onboarding is the questionnaire a user completes when they sign up.
// A Confidence of zero means the user did not answer.
type Onboarding struct {
	CareerBreakYears string   `json:"career_break_years,omitempty"`
	LastRole         string   `json:"last_role,omitempty"`
	Industry         string   `json:"industry,omitempty"`
	Skills           []string `json:"skills"`
	Confidence       int      `json:"confidence,omitempty" validate:"gte=0,lte=100"`
	Goal             string   `json:"goal,omitempty"`
}

// MergeSkills concatenates skill lists and removes exact duplicates,
// keeping the first occurrence.
func MergeSkills(lists ...[]string) []string {
	seen := make(map[string]bool)
	merged := make([]string, 0)
	for _, list := range lists {
		for _, s := range list {
			if seen[s] {
				continue
			}
			seen[s] = true
			merged = append(merged, s)
		}
	}
	return merged
}
