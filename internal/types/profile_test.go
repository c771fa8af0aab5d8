package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSkills(t *testing.T) {
	merged := MergeSkills([]string{"SQL", "Python"}, []string{"Python", "sql", "Tableau"}, nil)
	// dedup is exact, so "sql" survives next to "SQL"
	assert.Equal(t, []string{"SQL", "Python", "sql", "Tableau"}, merged)
	assert.Empty(t, MergeSkills())
}

func TestCareerProfile_ExperienceTitles(t *testing.T) {
	p := CareerProfile{Experience: []ExperienceEntry{
		{Title: "Staff Nurse", Company: "St. Mary's"},
		{Company: "No title"},
		{Title: "Charge Nurse"},
	}}
	assert.Equal(t, []string{"Staff Nurse", "Charge Nurse"}, p.ExperienceTitles())
}

func TestCareerProfile_UnmarshalSnakeCase(t *testing.T) {
	raw := `{
		"skills": ["Figma"],
		"goal": "pivot",
		"headline": "Product Designer at Acme",
		"target_roles": ["UX Lead"],
		"experience": [{"title": "Designer", "company": "Acme"}],
		"last_role": "Designer"
	}`

	var p CareerProfile
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, []string{"UX Lead"}, p.TargetRoles)
	assert.Equal(t, "Designer", p.LastRole)
	assert.Equal(t, "Designer", p.Experience[0].Title)
}
