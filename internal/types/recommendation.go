package types

// Recommendation is one generated role suggestion. Company carries the work
// type label because generated roles are not tied to an employer.
type Recommendation struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Match   int      `json:"match"`
	Gap     []string `json:"gap"`
	Salary  string   `json:"salary"`
	Type    string   `json:"type"`
	Desc    string   `json:"desc"`
}

// Recommendations groups generated roles by tier. Each slice is sorted by
// descending Match.
type Recommendations struct {
	Direct      []Recommendation `json:"direct"`
	Adjacent    []Recommendation `json:"adjacent"`
	Replacement []Recommendation `json:"replacement"`
}

// Total returns the number of recommendations across all tiers.
func (r *Recommendations) Total() int {
	return len(r.Direct) + len(r.Adjacent) + len(r.Replacement)
}

// Workshop is a course search link attached to a saved recommendation.
type Workshop struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

// Academy is a learning provider suited to a domain.
type Academy struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}
