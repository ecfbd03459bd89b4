package textgen

import (
	"context"
	"strings"
	"time"

	perr "creditclear/internal/platform/errors"

	"google.golang.org/genai"
)

// DefaultModel is used when GeminiConfig.Model is empty
const DefaultModel = "gemini-2.0-flash"

// GeminiConfig configures the Gemini backend
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int32
}

// Gemini generates prose with Google's Gemini API
type Gemini struct {
	client *genai.Client
	model  string
	cfg    *genai.GenerateContentConfig
}

// NewGemini dials the Gemini API; an empty key is an error
func NewGemini(ctx context.Context, c GeminiConfig) (*Gemini, error) {
	if strings.TrimSpace(c.APIKey) == "" {
		return nil, perr.New(perr.ErrorCodeInvalidArgument, "textgen: gemini api key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = 512
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "textgen: create gemini client")
	}
	return &Gemini{
		client: client,
		model:  c.Model,
		cfg: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(c.Temperature),
			MaxOutputTokens: c.MaxTokens,
		},
	}, nil
}

// Model returns the configured model name
func (g *Gemini) Model() string { return g.model }

// GenerateExplanation implements Generator
func (g *Gemini) GenerateExplanation(ctx context.Context, req Request) (string, error) {
	prompt, err := Render(req)
	if err != nil {
		return "", err
	}
	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), g.cfg)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "textgen: gemini %s after %s", req.Kind, time.Since(start).Round(time.Millisecond))
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", perr.Newf(perr.ErrorCodeUnavailable, "textgen: gemini returned no text for %s", req.Kind)
	}
	return text, nil
}
