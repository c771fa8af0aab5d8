package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, ProviderGemini, config.Provider)
	assert.Equal(t, "gemini-2.5-flash", config.GetModel(TierStandard))
	assert.Equal(t, "gemini-2.0-flash-lite", config.GetModel(TierLite))
	assert.Equal(t, "gemma-3-4b-it", config.GetModel(TierOpen))
	assert.Equal(t, 3, config.Retry.MaxAttempts)
}

func TestChain(t *testing.T) {
	assert.Equal(t,
		[]string{"gemini-2.5-flash", "gemini-2.0-flash-lite", "gemma-3-4b-it"},
		DefaultConfig().Chain())

	config := &Config{Models: map[ModelTier]string{
		TierStandard: "m1",
		TierLite:     "m1",
		TierOpen:     "",
	}}
	assert.Equal(t, []string{"m1"}, config.Chain())
}

func TestGetModel_Fallback(t *testing.T) {
	config := &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite: "fallback-model",
		},
	}

	assert.Equal(t, "fallback-model", config.GetModel("unknown"))
}

func TestGetModel_EmptyConfig(t *testing.T) {
	config := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}

	assert.Equal(t, "", config.GetModel(TierOpen))
	assert.Empty(t, config.Chain())
}

func TestWithModel(t *testing.T) {
	config := DefaultConfig()
	newConfig := config.WithModel(TierOpen, "custom-model")

	assert.Equal(t, "gemma-3-4b-it", config.GetModel(TierOpen))
	assert.Equal(t, "custom-model", newConfig.GetModel(TierOpen))
	assert.Equal(t, "gemini-2.0-flash-lite", newConfig.GetModel(TierLite))
	assert.Equal(t, config.Retry, newConfig.Retry)
}

func TestRetryPolicy_Delay(t *testing.T) {
	p := DefaultRetryPolicy()

	tests := []struct {
		attempt  int
		jitter   float64
		expected time.Duration
	}{
		{0, 0, time.Second},
		{1, 0, 2 * time.Second},
		{2, 0.5, 4*time.Second + 250*time.Millisecond},
		{3, 0.25, 8*time.Second + 125*time.Millisecond},
		{4, 0, 15 * time.Second},
		{10, 0.5, 15 * time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.Delay(tt.attempt, tt.jitter), "attempt %d", tt.attempt)
	}
}
