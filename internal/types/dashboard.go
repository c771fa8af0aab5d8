package types

// SkillLevel is one bar of the dashboard skills chart.
type SkillLevel struct {
	Skill string `json:"skill"`
	Val   int    `json:"val"`
}

// ProfileSignals are the profile fields that count towards profile strength.
type ProfileSignals struct {
	Headline    string
	About       string
	CareerBreak string
	Skills      []string
	OpenTo      []string
}
