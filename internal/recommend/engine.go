// Package recommend generates tiered role recommendations from a career
// profile: direct continuations of the user's track, adjacent pivots, and
// full replacements.
package recommend

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/types"
)

const (
	fallbackRole      = "Professional"
	fallbackTopSkills = "your core"
	topSkillCount     = 3

	directBaseScore   = 70
	directHitBonus    = 8
	maxScore          = 99
	minTitleWordRunes = 3
)

// tierScoring is max(Floor, coverage*Factor + Base) for non-direct tiers.
type tierScoring struct {
	Factor float64
	Base   float64
	Floor  float64
}

var coverageScoring = map[matching.Tier]tierScoring{
	matching.TierAdjacent:    {Factor: 0.7, Base: 30, Floor: 40},
	matching.TierReplacement: {Factor: 0.6, Base: 25, Floor: 35},
}

var (
	atCompanyPattern = regexp.MustCompile(`(?i)\s+at\s+`)
	seniorityPattern = regexp.MustCompile(`(?i)Manager|Lead|Specialist`)
)

// renderContext carries the values substituted into role templates.
type renderContext struct {
	Role      string // {role}
	TopSkills string // {skills}
	YearsText string // {years}
	WorkType  string // {worktype}, {worktype_lower}
}

func (c renderContext) render(format string) string {
	return strings.NewReplacer(
		"{role}", c.Role,
		"{head_role}", headRole(c.Role),
		"{skills}", c.TopSkills,
		"{years}", c.YearsText,
		"{worktype_lower}", strings.ToLower(c.WorkType),
		"{worktype}", c.WorkType,
	).Replace(format)
}

// headRole strips the first seniority word from a role so "Marketing
// Manager" reads as "Head of Marketing".
func headRole(role string) string {
	if loc := seniorityPattern.FindStringIndex(role); loc != nil {
		role = role[:loc[0]] + role[loc[1]:]
	}
	return strings.TrimSpace(role)
}

// Generate builds recommendations for every tier, or only the tier named by
// p.Category when it is set. An unrecognized category yields no
// recommendations. Generate never fails: missing fields fall back to generic
// wording and the General domain.
func Generate(p types.CareerProfile) types.Recommendations {
	domain := matching.RecommendationKeywords.Classify(Signals(p))
	weights := matching.WeightsFor(p.Goal)
	ctx := renderContext{
		Role:      PrimaryRole(p),
		TopSkills: topSkills(p.Skills),
		YearsText: YearsText(len(p.Experience)),
	}

	g := generator{profile: p, domain: domain, weights: weights, ctx: ctx}

	results := types.Recommendations{
		Direct:      []types.Recommendation{},
		Adjacent:    []types.Recommendation{},
		Replacement: []types.Recommendation{},
	}
	for _, tier := range matching.Tiers {
		if p.Category != "" && p.Category != string(tier) {
			continue
		}
		recs := g.tier(tier)
		switch tier {
		case matching.TierDirect:
			results.Direct = recs
		case matching.TierAdjacent:
			results.Adjacent = recs
		case matching.TierReplacement:
			results.Replacement = recs
		}
	}
	return results
}

// Signals collects the non-empty free-text fields used for domain detection.
func Signals(p types.CareerProfile) []string {
	raw := make([]string, 0, 4+len(p.Skills)+len(p.TargetRoles)+len(p.Experience))
	raw = append(raw, p.Headline)
	raw = append(raw, p.Skills...)
	raw = append(raw, p.TargetRoles...)
	raw = append(raw, p.ExperienceTitles()...)
	for _, e := range p.Education {
		raw = append(raw, e.Degree)
	}
	for _, c := range p.Certifications {
		raw = append(raw, c.Name)
	}
	raw = append(raw, p.Industry, p.LastRole)

	signals := raw[:0]
	for _, s := range raw {
		if s != "" {
			signals = append(signals, s)
		}
	}
	return signals
}

// PrimaryRole picks the role label used in direct-tier titles: the first
// target role, then the headline or last role with any "at <company>"
// suffix removed, then the first experience title.
func PrimaryRole(p types.CareerProfile) string {
	if len(p.TargetRoles) > 0 {
		return p.TargetRoles[0]
	}
	if p.Headline != "" {
		return stripCompany(p.Headline)
	}
	if p.LastRole != "" {
		return stripCompany(p.LastRole)
	}
	if titles := p.ExperienceTitles(); len(titles) > 0 {
		return titles[0]
	}
	return fallbackRole
}

func stripCompany(s string) string {
	return strings.TrimSpace(atCompanyPattern.Split(s, 2)[0])
}

func topSkills(skills []string) string {
	if len(skills) > topSkillCount {
		skills = skills[:topSkillCount]
	}
	if joined := strings.Join(skills, ", "); joined != "" {
		return joined
	}
	return fallbackTopSkills
}

// YearsText describes experience depth from the number of past roles.
func YearsText(experienceCount int) string {
	switch {
	case experienceCount >= 4:
		return "extensive"
	case experienceCount >= 2:
		return "solid"
	case experienceCount >= 1:
		return "valuable"
	default:
		return "your"
	}
}

type generator struct {
	profile types.CareerProfile
	domain  matching.Domain
	weights matching.Weights
	ctx     renderContext
}

func (g generator) tier(tier matching.Tier) []types.Recommendation {
	templates := templatesFor(g.domain).ForTier(tier)
	offset := tierWorkTypeOffset[tier]

	recs := make([]types.Recommendation, 0, len(templates))
	for i, tpl := range templates {
		wt := workTypes[(i+offset)%len(workTypes)]
		ctx := g.ctx
		ctx.WorkType = wt
		title := ctx.render(tpl.Title)

		var match int
		gap := []string{}
		if tier == matching.TierDirect {
			match = g.directScore(title)
		} else {
			match = g.coverageScore(tier, tpl.Skills)
			gap = append(gap, tpl.GapSkills...)
		}

		recs = append(recs, types.Recommendation{
			ID:      fmt.Sprintf("%s-%s-%d", tier, g.domain, i),
			Title:   title,
			Company: wt,
			Match:   match,
			Gap:     gap,
			Salary:  salaryFor(g.domain, tier, i),
			Type:    wt,
			Desc:    ctx.render(tpl.Description),
		})
	}

	sort.SliceStable(recs, func(a, b int) bool {
		return recs[a].Match > recs[b].Match
	})
	return recs
}

// directScore rewards title words the user already names in skills or
// headline.
func (g generator) directScore(title string) int {
	skillText := strings.ToLower(strings.Join(g.profile.Skills, " "))
	headline := strings.ToLower(g.profile.Headline)

	hits := 0
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if utf8.RuneCountInString(w) < minTitleWordRunes {
			continue
		}
		if matching.Contains(skillText, w) || matching.Contains(headline, w) {
			hits++
		}
	}

	match := min(maxScore, directBaseScore+hits*directHitBonus)
	return min(maxScore, int(math.Round(float64(match)*g.weights.Direct)))
}

func (g generator) coverageScore(tier matching.Tier, templateSkills []string) int {
	s := coverageScoring[tier]
	coverage := float64(matching.CoveragePercent(g.profile.Skills, templateSkills))
	raw := math.Max(s.Floor, coverage*s.Factor+s.Base)
	return min(maxScore, int(math.Round(raw*g.weights.For(tier))))
}
