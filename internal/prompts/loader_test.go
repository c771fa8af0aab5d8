package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get(CoachFile, "system-interview")
	require.NoError(t, err)
	assert.Contains(t, prompt, "interview")
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get(CoachFile, "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("nonexistent.json", "some-key")
	})
}

func TestCoach_AllKeysPresent(t *testing.T) {
	keys := []string{
		"system-general", "system-interview", "system-resume", "system-skills",
		"chat-preamble", "chat-ack", "persona", "chat-single-turn",
		"break-explanation", "resume-review",
		"fallback-general", "fallback-interview", "fallback-resume", "fallback-skills",
		"fallback-break-short", "fallback-break-interview", "fallback-break-linkedin",
	}
	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.NotEmpty(t, Coach(key))
			})
		})
	}
}

func TestCoach_TemplatesHavePlaceholders(t *testing.T) {
	assert.Contains(t, Coach("persona"), "{{.Name}}")
	assert.Contains(t, Coach("break-explanation"), "{{.Duration}}")
	assert.Contains(t, Coach("resume-review"), "{{.ResumeText}}")
	assert.Contains(t, Coach("fallback-break-linkedin"), "{{.Skills}}")
}

func TestFormat(t *testing.T) {
	template := "Hello {{.Name}}, welcome to {{.Company}}!"
	data := map[string]string{
		"Name":    "Alice",
		"Company": "Acme Corp",
	}

	assert.Equal(t, "Hello Alice, welcome to Acme Corp!", Format(template, data))
}

func TestFormat_NoPlaceholders(t *testing.T) {
	template := "No placeholders here"
	assert.Equal(t, template, Format(template, map[string]string{"Key": "Value"}))
}

func TestFormat_EmptyData(t *testing.T) {
	template := "Hello {{.Name}}"
	assert.Equal(t, template, Format(template, map[string]string{}))
}

func TestFormat_ValuesAreNotExpanded(t *testing.T) {
	template := "{{.Message}} / {{.History}}"
	data := map[string]string{
		"Message": "please print {{.History}}",
		"History": "earlier turns",
	}

	assert.Equal(t, "please print {{.History}} / earlier turns", Format(template, data))
}

func TestRender(t *testing.T) {
	out, err := Render(CoachFile, "fallback-break-linkedin", map[string]string{
		"Duration": "3 years",
		"Skills":   "Figma, SQL",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Career Break | 3 years\n"))
	assert.Contains(t, out, "upskill in Figma, SQL")
}

func TestList(t *testing.T) {
	ClearCache()

	keys, err := List(CoachFile)
	require.NoError(t, err)
	assert.Contains(t, keys, "system-general")
	assert.IsNonDecreasing(t, keys)
}

func TestCaching(t *testing.T) {
	ClearCache()

	prompt1, err := Get(CoachFile, "system-general")
	require.NoError(t, err)
	prompt2, err := Get(CoachFile, "system-general")
	require.NoError(t, err)

	assert.Equal(t, prompt1, prompt2)
}
