package receipt

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for receipt extraction.
const DefaultModel = "gemini-2.5-flash"

// inferenceTimeout caps a single model call. The transport default is
// effectively unbounded, so the invoker imposes its own deadline.
const inferenceTimeout = 30 * time.Second

// Invoker sends an image and a prompt to a multimodal model and returns the
// raw text it produced. The interface exists so the extraction service can be
// tested without network access.
type Invoker interface {
	Generate(ctx context.Context, img *Image, prompt string) (string, error)
}

// Gemini is the Invoker implementation backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini invoker. It fails with ErrAPIKeyMissing when no
// key is configured, so an absent credential is reported at startup rather
// than discovered as a failed network call.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Generate performs a single model call: one attempt, no retry. The image
// precedes the prompt in the request parts, matching the prompt's wording.
func (g *Gemini) Generate(ctx context.Context, img *Image, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, inferenceTimeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{
					InlineData: &genai.Blob{
						MIMEType: img.MIMEType,
						Data:     img.Data,
					},
				},
				{Text: prompt},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", &InferenceError{Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &InferenceError{Err: fmt.Errorf("empty response from model")}
	}

	return text, nil
}
