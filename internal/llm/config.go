// Package llm wraps the generative model used by the career coach. Calls walk
// an ordered chain of models and retry transient failures on each one.
package llm

import (
	"math"
	"time"
)

// ModelTier names a slot in the model fallback chain.
type ModelTier string

const (
	// TierStandard is the preferred model for every call.
	TierStandard ModelTier = "standard"
	// TierLite is tried when the standard model is rate limited or unavailable.
	TierLite ModelTier = "lite"
	// TierOpen is the last resort, an open-weights model with separate quota.
	TierOpen ModelTier = "open"
)

// tierOrder is the order in which tiers are tried.
var tierOrder = []ModelTier{TierStandard, TierLite, TierOpen}

// Provider represents an LLM provider
type Provider string

// ProviderGemini is the Google Gemini provider
const ProviderGemini Provider = "gemini"

// RetryPolicy controls retries of a single model before moving down the chain.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxJitter   time.Duration
}

// DefaultRetryPolicy allows three attempts per model with exponential backoff
// starting at one second and capped at fifteen.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    15 * time.Second,
		MaxJitter:   500 * time.Millisecond,
	}
}

// Delay returns the wait before the retry that follows the given zero-based
// attempt. jitter is a fraction in [0, 1) of MaxJitter.
func (p RetryPolicy) Delay(attempt int, jitter float64) time.Duration {
	d := float64(p.BaseDelay)*math.Pow(2, float64(attempt)) + jitter*float64(p.MaxJitter)
	if d > float64(p.MaxDelay) {
		return p.MaxDelay
	}
	return time.Duration(d)
}

// Config holds the model configuration for the application
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
	// Temperature of zero leaves the provider default in place.
	Temperature float32
	Retry       RetryPolicy
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierStandard: "gemini-2.5-flash",
			TierLite:     "gemini-2.0-flash-lite",
			TierOpen:     "gemma-3-4b-it",
		},
		Retry: DefaultRetryPolicy(),
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return "" // No model configured
}

// Chain returns the configured models in the order they should be tried,
// skipping empty and repeated names.
func (c *Config) Chain() []string {
	chain := make([]string, 0, len(tierOrder))
	seen := make(map[string]bool)
	for _, tier := range tierOrder {
		model := c.Models[tier]
		if model == "" || seen[model] {
			continue
		}
		seen[model] = true
		chain = append(chain, model)
	}
	return chain
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := &Config{
		Provider:    c.Provider,
		Models:      make(map[ModelTier]string),
		Temperature: c.Temperature,
		Retry:       c.Retry,
	}
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return newConfig
}
