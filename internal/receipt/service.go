package receipt

import (
	"context"

	"github.com/rs/zerolog"
)

// Service runs the receipt extraction pipeline: validate and decode the
// upload, invoke the model, sanitize its output, decode the result. Each
// stage returns an explicit error and the pipeline short-circuits on the
// first one.
type Service struct {
	invoker Invoker
	log     zerolog.Logger
}

// NewService creates an extraction service around the given invoker.
func NewService(invoker Invoker, log zerolog.Logger) *Service {
	return &Service{invoker: invoker, log: log}
}

// Extract processes one uploaded receipt photo and returns the structured
// record the model produced.
func (s *Service) Extract(ctx context.Context, data []byte, mediaType string) (*Record, error) {
	img, err := DecodeImage(data, mediaType)
	if err != nil {
		return nil, err
	}

	raw, err := s.invoker.Generate(ctx, img, ExtractionPrompt())
	if err != nil {
		return nil, err
	}

	rec, err := DecodeRecord(Sanitize(raw))
	if err != nil {
		s.log.Error().Err(err).Msg("Model output failed to decode")
		return nil, err
	}

	s.log.Info().
		Str("media_type", mediaType).
		Int("items", len(rec.Items)).
		Msg("Receipt extracted")

	return rec, nil
}
