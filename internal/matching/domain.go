// Package matching holds the shared primitives behind recommendation and
// roadmap generation: domain classification from free-text signals, fuzzy
// skill matching with an alias table, and goal-weighted match scoring.
package matching

// Domain is a career field used to select keyword lists and templates.
type Domain string

// Known domains. General is the fallback when no other domain is
// detected with enough confidence.
const (
	Design      Domain = "design"
	Engineering Domain = "engineering"
	Data        Domain = "data"
	Marketing   Domain = "marketing"
	Healthcare  Domain = "healthcare"
	Finance     Domain = "finance"
	Education   Domain = "education"
	Operations  Domain = "operations"
	Legal       Domain = "legal"
	HR          Domain = "hr"
	General     Domain = "general"
)

func (d Domain) String() string {
	return string(d)
}
