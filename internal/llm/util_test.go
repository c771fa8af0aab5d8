package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "fence with json on the same line",
			input:    "```{\"key\": \"value\"}```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    "  {\"key\": \"value\"}\n",
			expected: `{"key": "value"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{
			name:     "simple object",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
			ok:       true,
		},
		{
			name:     "preamble and trailing text",
			input:    "Here you go:\n{\"short\": \"a\"}\nGood luck!",
			expected: `{"short": "a"}`,
			ok:       true,
		},
		{
			name:     "nested objects span to the last brace",
			input:    `x {"a": {"b": 1}} y {"c": 2} z`,
			expected: `{"a": {"b": 1}} y {"c": 2}`,
			ok:       true,
		},
		{
			name:     "fenced reply",
			input:    "```json\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
			ok:       true,
		},
		{name: "empty input", input: ""},
		{name: "no braces", input: "not json"},
		{name: "closing before opening", input: "} {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
