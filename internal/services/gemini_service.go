package services

import (
	"context"
	"errors"
	"fmt"

	"deepresearch-backend/internal/models"
	"deepresearch-backend/pkg/logger"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-pro"

// ErrGeminiUnavailable is returned when no usable Gemini credentials are
// configured. Callers are expected to check Available before generating.
var ErrGeminiUnavailable = errors.New("gemini API is not available, configure an API key in the admin settings")

// GeminiService produces research results for prompt text. The API key lives
// in the GEMINI api_config row so operators can rotate it at runtime; the
// client is built per call from whatever key is currently active.
type GeminiService struct {
	Model string

	// NewClient is swappable in tests. Defaults to the real genai client.
	NewClient func(ctx context.Context, apiKey string) (*genai.Client, error)
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		Model: defaultGeminiModel,
		NewClient: func(ctx context.Context, apiKey string) (*genai.Client, error) {
			return genai.NewClient(ctx, option.WithAPIKey(apiKey))
		},
	}
}

// Available reports whether an active GEMINI config with a non-blank API key
// exists. Pure function of stored configuration, no cached state.
func (s *GeminiService) Available() bool {
	cfg, err := GetActiveConfig(models.ConfigTypeGemini)
	return err == nil && cfg.APIKey != ""
}

// Generate sends the prompt to the Gemini API and returns the generated text.
func (s *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	cfg, err := GetActiveConfig(models.ConfigTypeGemini)
	if err != nil || cfg.APIKey == "" {
		return "", ErrGeminiUnavailable
	}

	client, err := s.NewClient(ctx, cfg.APIKey)
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.Model)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Log.Error("gemini generation failed", zap.Error(err))
		return "", fmt.Errorf("failed to get research result: %w", err)
	}

	return extractGeminiText(resp)
}

func extractGeminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no candidates in gemini response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("no content in gemini response")
	}

	text, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected part type in gemini response")
	}

	return string(text), nil
}
