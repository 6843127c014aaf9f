// Package translate normalizes user questions to the working language.
package translate

import (
	"context"

	"go.uber.org/zap"

	"medqa/internal/logging"
)

// Backend performs a translation call that may fail.
type Backend interface {
	TranslateText(ctx context.Context, text string) (string, error)
}

// FailOpen wraps a Backend so that any failure yields the original text.
type FailOpen struct {
	backend Backend
	logger  *zap.Logger
}

// NewFailOpen creates a translator that never surfaces backend errors.
func NewFailOpen(backend Backend, logger *zap.Logger) *FailOpen {
	return &FailOpen{backend: backend, logger: logging.OrNop(logger).Named("translate")}
}

// Translate returns the translation of text, or text itself when the
// backend fails or returns nothing.
func (f *FailOpen) Translate(ctx context.Context, text string) string {
	if f.backend == nil || text == "" {
		return text
	}
	out, err := f.backend.TranslateText(ctx, text)
	if err != nil {
		f.logger.Warn("translation failed, using original text", zap.Error(err))
		return text
	}
	if out == "" {
		f.logger.Warn("translation returned empty text, using original text")
		return text
	}
	return out
}

// Identity returns its input unchanged.
type Identity struct{}

// Translate returns text.
func (Identity) Translate(_ context.Context, text string) string { return text }
