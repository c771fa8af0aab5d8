package recommend

import (
	"testing"

	"github.com/jonathan/career-comeback/internal/matching"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningDomain(t *testing.T) {
	assert.Equal(t, matching.Engineering, LearningDomain("Product Analyst", []string{"SQL/Python"}))
	assert.Equal(t, matching.Design, LearningDomain("Brand Strategist", nil))
	assert.Equal(t, matching.Finance, LearningDomain("Financial Literacy Educator", nil))
	assert.Equal(t, matching.Data, LearningDomain("Quantitative Researcher", []string{"Advanced Statistics"}))
	assert.Equal(t, matching.General, LearningDomain("Treasury Analyst", []string{"Treasury Systems"}))
}

func TestWorkshops(t *testing.T) {
	links := Workshops("Data Engineer", []string{"Spark", "Airflow", "Data Modeling"})

	require.Len(t, links, 5)
	assert.Equal(t, "https://www.coursera.org/search?query=Data%20Engineer", links[0].URL)
	assert.Equal(t, "https://www.edx.org/search?q=Data%20Engineer", links[3].URL)

	gap := links[4]
	assert.Equal(t, "Skill-Gap Workshop", gap.Name)
	assert.Equal(t, "https://www.coursera.org/search?query=Spark%20Airflow", gap.URL)
	assert.Equal(t, "Focus: Spark, Airflow", gap.Note)
}

func TestWorkshops_NoGapsAndEmptyTitle(t *testing.T) {
	links := Workshops("", nil)
	require.Len(t, links, 4)
	assert.Equal(t, "https://www.udemy.com/courses/search/?q=career%20skills", links[2].URL)
}

func TestAcademies(t *testing.T) {
	health := Academies(matching.Healthcare)
	require.Len(t, health, 4)
	assert.Equal(t, "LinkedIn Learning", health[3].Name)

	legal := Academies(matching.Legal)
	require.Len(t, legal, 4)
	assert.Equal(t, "Coursera", legal[0].Name)
}
