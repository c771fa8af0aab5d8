// Package dashboard computes the progress metrics shown on a user's
// dashboard: comeback score, profile strength and daily reminders.
package dashboard

import (
	"hash/fnv"
	"math"
	"unicode/utf8"

	"github.com/jonathan/career-comeback/internal/types"
)

const (
	// Defaults for a user with no metrics yet.
	DefaultComebackScore     = 0
	DefaultConfidence        = 20
	DefaultProfileStrength   = 10
	OnboardedProfileStrength = 25

	maxScore = 100

	unansweredConfidence = 50
	confidenceWeight     = 0.4
	pointsPerSkill       = 8
	maxSkillPoints       = 40
	baseComebackScore    = 20

	maxProgressBonus = 30
	minRescoreBase   = 20

	skillValueFloor = 40
	skillValueSpan  = 40
)

// InitialComebackScore scores a freshly onboarded user from their stated
// confidence and skill count. A confidence of zero counts as unanswered.
func InitialComebackScore(confidence, skillCount int) int {
	if confidence == 0 {
		confidence = unansweredConfidence
	}
	conf := float64(confidence) * confidenceWeight
	skills := float64(min(skillCount*pointsPerSkill, maxSkillPoints))
	return min(int(math.Round(conf+skills+baseComebackScore)), maxScore)
}

// InitialConfidenceHistory seeds the confidence chart after onboarding.
func InitialConfidenceHistory(confidence int) []int {
	if confidence == 0 {
		confidence = DefaultConfidence
	}
	return []int{confidence}
}

// RescoreFromProgress replaces the roadmap bonus in a comeback score with
// one based on done/total. It reports false, leaving the score unchanged,
// when the roadmap is empty.
func RescoreFromProgress(current, done, total int) (int, bool) {
	if total == 0 {
		return current, false
	}
	bonus := int(math.Round(float64(done) / float64(total) * maxProgressBonus))
	base := max(current-maxProgressBonus, minRescoreBase)
	return min(base+bonus, maxScore), true
}

// ProfileStrength rates how complete a profile is, from 10 to 100.
func ProfileStrength(p *types.ProfileSignals) int {
	if p == nil {
		return DefaultProfileStrength
	}

	score := DefaultProfileStrength
	if utf8.RuneCountInString(p.Headline) > 10 {
		score += 15
	}
	if utf8.RuneCountInString(p.About) > 50 {
		score += 20
	}
	if utf8.RuneCountInString(p.CareerBreak) > 30 {
		score += 20
	}
	if len(p.Skills) >= 3 {
		score += 15
	}
	if len(p.Skills) >= 7 {
		score += 10
	}
	if len(p.OpenTo) > 0 {
		score += 10
	}
	return min(score, maxScore)
}

// SkillLevels builds the initial skills chart. Each value is derived from
// the skill name so the chart is stable across requests.
func SkillLevels(skills []string) []types.SkillLevel {
	levels := make([]types.SkillLevel, 0, len(skills))
	for _, s := range skills {
		h := fnv.New32a()
		_, _ = h.Write([]byte(s))
		levels = append(levels, types.SkillLevel{
			Skill: s,
			Val:   skillValueFloor + int(h.Sum32()%skillValueSpan),
		})
	}
	return levels
}
