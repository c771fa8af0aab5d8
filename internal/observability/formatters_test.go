package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/jonathan/career-comeback/internal/types"
)

func recs(n int, prefix string) []types.Recommendation {
	out := make([]types.Recommendation, n)
	for i := range out {
		out[i] = types.Recommendation{
			Title: prefix + " Role", Company: "Various", Match: 90 - i, Salary: "$80k–$100k", Type: "Remote",
			Gap: []string{},
		}
	}
	return out
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	all := &types.Recommendations{
		Direct:      recs(7, "Frontend"),
		Adjacent:    []types.Recommendation{{Title: "Product Designer", Company: "Startups", Match: 64, Gap: []string{"Figma", "User Research"}}},
		Replacement: []types.Recommendation{},
	}
	p.PrintRecommendations(all)
	output := buf.String()

	assert.Contains(t, output, "DIRECT MATCHES (7)")
	assert.Contains(t, output, "#1  Frontend Role  90%")
	assert.Contains(t, output, "#5  Frontend Role  86%")
	assert.NotContains(t, output, "#6")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "ADJACENT ROLES (1)")
	assert.Contains(t, output, "Gap: Figma, User Research")
	assert.NotContains(t, output, "NEW DIRECTIONS")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)
	assert.Empty(t, buf.String())

	p.PrintRecommendations(&types.Recommendations{})
	assert.Contains(t, buf.String(), "No recommendations for this profile.")
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoadmap([]types.Milestone{
		{Title: "Update your LinkedIn profile", Week: "Week 1", SortOrder: 1, Done: true},
		{Title: "Celebrate your progress", SortOrder: 2},
	}, types.Progress{Total: 2, Done: 1, Percentage: 50})
	output := buf.String()

	assert.Contains(t, output, "COMEBACK ROADMAP")
	assert.Contains(t, output, "Progress: 1/2 (50%)")
	assert.Contains(t, output, "[x]  1. Update your LinkedIn profile")
	assert.Contains(t, output, "Week 1")
	assert.Contains(t, output, "[ ]  2. Celebrate your progress")
}

func TestPrintRoadmap_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoadmap(nil, types.Progress{})
	assert.Contains(t, buf.String(), "No milestones yet.")
}

func TestPrintDomain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintDomain(matching.Engineering, []string{"React", "Docker"})
	assert.Contains(t, buf.String(), "Domain:   engineering")
	assert.Contains(t, buf.String(), "Signals:  React, Docker")

	buf.Reset()
	p.PrintDomain(matching.General, nil)
	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintBox_LinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("é", 100))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, lines[4], "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "né...", truncate("néééééé", 5))
}
