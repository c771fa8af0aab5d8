package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jonathan/career-comeback/internal/logger"
)

// Roles of a chat turn as the model API names them.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Message is one turn of a chat history.
type Message struct {
	Role string
	Text string
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent answers a single prompt, walking the model chain with retries.
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// GenerateJSON is GenerateContent with markdown fences stripped from the reply.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Chat continues a conversation on the preferred model with a single attempt.
	// Callers fall back to GenerateContent when it is rate limited.
	Chat(ctx context.Context, history []Message, message string) (string, error)
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	return NewGeminiClient(ctx, config, apiKey)
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client  *genai.Client
	config  *Config
	retrier *retrier
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		config:  config,
		retrier: newRetrier(config.Chain(), config.Retry, *logger.Named("llm")),
	}, nil
}

func (c *GeminiClient) model(name string) *genai.GenerativeModel {
	m := c.client.GenerativeModel(name)
	if c.config.Temperature > 0 {
		m.SetTemperature(c.config.Temperature)
	}
	return m
}

// GenerateContent answers a single prompt
func (c *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return c.retrier.do(ctx, func(ctx context.Context, name string) (string, error) {
		resp, err := c.model(name).GenerateContent(ctx, genai.Text(prompt))
		if err != nil {
			return "", fmt.Errorf("failed to generate content: %w", err)
		}
		return extractTextFromResponse(resp)
	})
}

// GenerateJSON answers a prompt that asks for JSON output
func (c *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	text, err := c.GenerateContent(ctx, prompt)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// Chat sends message after replaying history on the preferred model
func (c *GeminiClient) Chat(ctx context.Context, history []Message, message string) (string, error) {
	name := c.config.GetModel(TierStandard)
	if name == "" {
		return "", fmt.Errorf("no model configured for tier %s", TierStandard)
	}

	cs := c.model(name).StartChat()
	cs.History = toContents(history)
	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("failed to send chat message: %w", err)
	}
	return extractTextFromResponse(resp)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func toContents(history []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := RoleModel
		if m.Role == RoleUser {
			role = RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return contents
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
