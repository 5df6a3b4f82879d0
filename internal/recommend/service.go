// Copyright (c) 2026 Manhwaverse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package recommend produces free-text reading recommendations from a
viewer's reading history and stated preferences.

The generation itself is delegated to an external large-language-model
collaborator behind the [Generator] interface; this package owns input
validation, prompting, and the degraded behaviour when no generator is
configured.
*/
package recommend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/manhwaverse/internal/platform/apperr"
	"github.com/taibuivan/manhwaverse/internal/platform/validate"
)

// Generator is the opaque recommendation collaborator: free text in,
// free text out, fallible.
type Generator interface {
	Generate(ctx context.Context, readingHistory, preferences string) (string, error)
}

// # Service Layer

// Service validates recommendation requests and delegates generation.
type Service struct {
	generator Generator
	logger    *slog.Logger
}

// NewService constructs a recommendation [Service].
//
// generator may be nil when no API key is configured; requests then fail
// with SERVICE_UNAVAILABLE instead of panicking.
func NewService(generator Generator, logger *slog.Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

// Enabled reports whether a generator is configured.
func (service *Service) Enabled() bool {
	return service.generator != nil
}

/*
Recommend produces a free-text recommendation for the viewer.

Description: Both inputs must carry enough signal to prompt on (minimum
ten characters each, mirroring the catalog's description rule). The
generator's output is returned verbatim — it is display text, not data.

Parameters:
  - ctx: context.Context (Carries the request deadline; generation is the
    one slow call in the system)
  - readingHistory: string (Free text, e.g. recently read titles)
  - preferences: string (Free text, e.g. favourite genres and moods)

Returns:
  - string: The recommendation text
  - error: apperr.ValidationError, apperr.ServiceUnavailable, or a wrapped
    generator failure
*/
func (service *Service) Recommend(ctx context.Context, readingHistory, preferences string) (string, error) {
	validator := &validate.Validator{}
	validator.Required("readingHistory", readingHistory).MinLen("readingHistory", readingHistory, 10)
	validator.Required("preferences", preferences).MinLen("preferences", preferences, 10)
	if err := validator.Err(); err != nil {
		return "", err
	}

	if service.generator == nil {
		return "", apperr.ServiceUnavailable("Recommendations are not configured on this server")
	}

	text, err := service.generator.Generate(ctx, readingHistory, preferences)
	if err != nil {
		service.logger.Error("recommendation_generation_failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("recommend: generation failed: %w", err)
	}

	service.logger.Info("recommendation_generated", slog.Int("length", len(text)))
	return text, nil
}
