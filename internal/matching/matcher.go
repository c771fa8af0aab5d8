package matching

import (
	"math"
	"strings"
)

const (
	// maxGaps caps the gap list returned by CalculateMatch.
	maxGaps = 4
	// neutralBaseScore is used when a role lists no required skills.
	neutralBaseScore = 50
	minMatchScore    = 30
	maxMatchScore    = 99
)

// MatchResult is the outcome of scoring user skills against a role.
type MatchResult struct {
	Score int      `json:"score"`
	Gaps  []string `json:"gaps"`
}

// normalizeSkills lower-cases and trims skills, dropping blanks. A blank
// entry would otherwise be contained in every required skill.
func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// overlaps reports exact match or containment in either direction.
func overlaps(a, b string) bool {
	return a == b || Contains(a, b) || Contains(b, a)
}

// coveredBy reports whether any of the normalized user skills overlaps target.
func coveredBy(userSkills []string, target string) bool {
	for _, us := range userSkills {
		if overlaps(us, target) {
			return true
		}
	}
	return false
}

// CoveragePercent returns the share of templateSkills covered by userSkills,
// as a rounded percentage. An empty templateSkills list is fully covered.
func CoveragePercent(userSkills, templateSkills []string) int {
	if len(templateSkills) == 0 {
		return 100
	}
	user := normalizeSkills(userSkills)

	matched := 0
	for _, ts := range templateSkills {
		if coveredBy(user, strings.ToLower(ts)) {
			matched++
		}
	}
	return int(math.Round(float64(matched) / float64(len(templateSkills)) * 100))
}

// MissingSkills returns, in reference order, the reference skills not covered
// by userSkills, stopping after limit entries. A limit <= 0 means no limit.
func MissingSkills(userSkills, reference []string, limit int) []string {
	user := normalizeSkills(userSkills)

	gaps := make([]string, 0)
	for _, ref := range reference {
		if limit > 0 && len(gaps) == limit {
			break
		}
		if !coveredBy(user, strings.ToLower(ref)) {
			gaps = append(gaps, ref)
		}
	}
	return gaps
}

// SkillMatches reports whether a normalized user skill satisfies a normalized
// required skill. Checks run in order: exact, containment either way, a
// shared word longer than two characters, then the alias table in both
// directions.
func SkillMatches(user, required string) bool {
	if overlaps(user, required) {
		return true
	}
	if sharesSignificantWord(user, required) {
		return true
	}
	for _, a := range Aliases(required) {
		if Contains(user, a) || Contains(a, user) {
			return true
		}
	}
	for _, a := range Aliases(user) {
		if Contains(required, a) || Contains(a, required) {
			return true
		}
	}
	return false
}

func sharesSignificantWord(user, required string) bool {
	userWords := strings.Fields(user)
	for _, rw := range strings.Fields(required) {
		if len(rw) <= 2 {
			continue
		}
		for _, uw := range userWords {
			if uw == rw {
				return true
			}
		}
	}
	return false
}

// CalculateMatch scores userSkills against requiredSkills for a role in the
// given tier. Unmatched required skills become title-cased gaps, followed by
// any fixedGaps not already listed. The score is clamped to [30, 99] after
// the goal weight for tier is applied, and at most four gaps are returned.
func CalculateMatch(userSkills, requiredSkills, fixedGaps []string, goal string, tier Tier) MatchResult {
	user := normalizeSkills(userSkills)

	matched := 0
	required := 0
	gaps := make([]string, 0)
	for _, r := range requiredSkills {
		req := strings.ToLower(strings.TrimSpace(r))
		required++

		found := false
		for _, us := range user {
			if SkillMatches(us, req) {
				found = true
				break
			}
		}
		if found {
			matched++
		} else {
			gaps = append(gaps, TitleCase(req))
		}
	}

	for _, g := range fixedGaps {
		if !containsExact(gaps, g) {
			gaps = append(gaps, g)
		}
	}

	base := neutralBaseScore
	if required > 0 {
		base = int(math.Round(float64(matched) / float64(required) * 100))
	}

	weight := WeightsFor(goal).For(tier)
	score := ClampScore(int(math.Round(float64(base)*weight)), minMatchScore, maxMatchScore)

	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return MatchResult{Score: score, Gaps: gaps}
}

// ClampScore bounds v to [lo, hi].
func ClampScore(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func containsExact(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// TitleCase upper-cases the first letter or digit of every word, where a word
// starts after any character that is not an ASCII letter, digit or
// underscore. The rest of the text is left unchanged, so "node.js" becomes
// "Node.Js".
func TitleCase(s string) string {
	b := []byte(s)
	prevWord := false
	for i, c := range b {
		word := isWordByte(c)
		if word && !prevWord && c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
		prevWord = word
	}
	return string(b)
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
