package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/1Kunalvats9/teen-titans-backend/internal/config"
)

const (
	geminiModel    = "gemini-2.0-flash"
	requestTimeout = 60 * time.Second
)

// TextProvider is the generative text boundary: prompt in, free text out.
// No structural contract is assumed on the response.
type TextProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (TextProvider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(
		ctx,
		geminiModel,
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("Raw Gemini response:\n%s", raw)

	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
