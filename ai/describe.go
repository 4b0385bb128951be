package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// FallbackDescription is used whenever generation fails or no generator
// is configured.
const FallbackDescription = "Premium grocery product, carefully selected for freshness and quality."

// Generator produces a product description from a title and category.
type Generator interface {
	Describe(ctx context.Context, title, category string) (string, error)
}

// Describe wraps a Generator with the fixed fallback.
func Describe(ctx context.Context, g Generator, title, category string) string {
	if g == nil {
		return FallbackDescription
	}
	desc, err := g.Describe(ctx, title, category)
	if err != nil || strings.TrimSpace(desc) == "" {
		return FallbackDescription
	}
	return strings.TrimSpace(desc)
}

// OpenAIGenerator calls the chat-completions API. Callers only see the
// Generator interface.
type OpenAIGenerator struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewOpenAIGenerator(apiKey, model string) *OpenAIGenerator {
	return &OpenAIGenerator{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: "https://api.openai.com/v1",
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (g *OpenAIGenerator) Describe(ctx context.Context, title, category string) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("openai: missing API key")
	}

	prompt := fmt.Sprintf(`Write a detailed and compelling product description for %q in the %q category.
- The description should be between 100-150 words.
- Clearly mention features, benefits, nutritional value, and ideal usage.
- Make it engaging for online grocery buyers.
- Use short paragraphs to improve readability.`, title, category)

	body, err := json.Marshal(chatRequest{
		Model:       g.Model,
		Messages:    []chatMessage{{Role: "system", Content: prompt}},
		MaxTokens:   300,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
