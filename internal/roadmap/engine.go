// Package roadmap assembles a personalized, ordered list of comeback
// milestones from a user's profile and onboarding answers.
package roadmap

import (
	"math"
	"strings"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/types"
)

const (
	// MaxSkillGaps is the number of core-skill gaps considered.
	MaxSkillGaps = 5

	// DefaultConfidence is used when onboarding confidence is unset.
	DefaultConfidence = 50

	extendedBreakMonths    = 36
	lowConfidence          = 40
	journalingConfidence   = 60
	fallbackTargetRole     = "your target role"
	fallbackIndustry       = "your industry"
	fallbackFirstSkillGap  = "a relevant new skill"
	fallbackSecondSkillGap = "an emerging skill in your field"
)

// Plan holds the intermediate values derived while building a roadmap.
type Plan struct {
	Domain      matching.Domain
	SkillGaps   []string
	BreakMonths int
	Confidence  int
}

// Signals returns the free-text fields used for roadmap domain detection.
// Empty fields are kept; they only add separators to the search text.
func Signals(p types.CareerProfile, o types.Onboarding) []string {
	signals := make([]string, 0, 3+len(p.Skills)+len(p.TargetRoles)+len(o.Skills))
	signals = append(signals, p.Headline)
	signals = append(signals, p.Skills...)
	signals = append(signals, p.TargetRoles...)
	signals = append(signals, o.LastRole, o.Industry)
	signals = append(signals, o.Skills...)
	return signals
}

// Analyze derives the domain, skill gaps, break length and confidence that
// shape a roadmap.
func Analyze(p types.CareerProfile, o types.Onboarding) Plan {
	domain := matching.RoadmapKeywords.Classify(Signals(p, o))
	skills := types.MergeSkills(p.Skills, o.Skills)

	confidence := o.Confidence
	if confidence == 0 {
		confidence = DefaultConfidence
	}

	return Plan{
		Domain:      domain,
		SkillGaps:   matching.MissingSkills(skills, CoreSkills(domain), MaxSkillGaps),
		BreakMonths: ParseBreakMonths(o.CareerBreakYears),
		Confidence:  confidence,
	}
}

// Generate returns a fresh roadmap with every milestone not done and sort
// order running from 1. It never fails; missing fields produce generic
// wording.
func Generate(p types.CareerProfile, o types.Onboarding) []types.Milestone {
	return Build(Analyze(p, o), substitutions(p, o))
}

// Build assembles milestones for an analyzed plan. subs supplies the
// target role and industry phrases; skill gap phrases come from plan.
func Build(plan Plan, subs Substitutions) []types.Milestone {
	subs.SkillGap1 = nthOr(plan.SkillGaps, 0, fallbackFirstSkillGap)
	subs.SkillGap2 = nthOr(plan.SkillGaps, 1, fallbackSecondSkillGap)

	templates := make([]milestoneTemplate, 0, 17)
	templates = append(templates, linkedInMilestone)
	if plan.BreakMonths > extendedBreakMonths {
		templates = append(templates, extendedBreakMilestones...)
	}
	if plan.Confidence < lowConfidence {
		templates = append(templates, lowConfidenceMilestones...)
	}
	for _, m := range milestonesFor(plan.Domain) {
		templates = append(templates, milestoneTemplate{
			Title:       subs.apply(m.Title),
			Description: subs.apply(m.Description),
			Week:        m.Week,
		})
	}
	templates = append(templates, resumeMilestone, networkMilestone, applyMilestone, interviewMilestone)
	if plan.Confidence < journalingConfidence {
		templates = append(templates, journalingMilestone)
	}
	templates = append(templates, celebrateMilestone)

	milestones := make([]types.Milestone, 0, len(templates))
	for i, m := range templates {
		milestones = append(milestones, types.Milestone{
			Title:       m.Title,
			Description: m.Description,
			Week:        m.Week,
			SortOrder:   i + 1,
			Done:        false,
		})
	}
	return milestones
}

// Substitutions are the values for placeholder tokens in domain milestones.
type Substitutions struct {
	TargetRole string
	Industry   string
	SkillGap1  string
	SkillGap2  string
}

func substitutions(p types.CareerProfile, o types.Onboarding) Substitutions {
	targetRole := nthOr(p.TargetRoles, 0, "")
	if targetRole == "" {
		targetRole = o.LastRole
	}
	if targetRole == "" {
		targetRole = fallbackTargetRole
	}

	industry := o.Industry
	if industry == "" {
		industry = fallbackIndustry
	}
	return Substitutions{TargetRole: targetRole, Industry: industry}
}

// apply replaces the first occurrence of each token, in a fixed order.
func (s Substitutions) apply(text string) string {
	text = strings.Replace(text, TokenTargetRole, s.TargetRole, 1)
	text = strings.Replace(text, TokenIndustry, s.Industry, 1)
	text = strings.Replace(text, TokenSkillGap1, s.SkillGap1, 1)
	text = strings.Replace(text, TokenSkillGap2, s.SkillGap2, 1)
	return text
}

func nthOr(list []string, i int, fallback string) string {
	if i < len(list) && list[i] != "" {
		return list[i]
	}
	return fallback
}

// Progress summarises completion of a roadmap. Percentage is zero for an
// empty roadmap.
func Progress(milestones []types.Milestone) types.Progress {
	done := 0
	for _, m := range milestones {
		if m.Done {
			done++
		}
	}
	return ProgressOf(done, len(milestones))
}

// ProgressOf builds a Progress from counts.
func ProgressOf(done, total int) types.Progress {
	p := types.Progress{Total: total, Done: done}
	if total > 0 {
		p.Percentage = int(math.Round(float64(done) / float64(total) * 100))
	}
	return p
}
