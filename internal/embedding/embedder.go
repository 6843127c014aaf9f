// Package embedding selects the text embedder used by the matcher.
package embedding

import (
	"fmt"
	"io"
	"time"

	"medqa/internal/config"
	"medqa/internal/domain"
	"medqa/internal/embedding/fastembed"
	"medqa/internal/embedding/openai"
	"medqa/internal/embedding/tfidf"
)

// Embedder converts free text into numeric vector representations.
type Embedder = domain.Embedder

// New builds the embedder named by cfg.Type. The returned Closer releases
// model resources and is never nil.
func New(cfg config.EmbedderConfig) (Embedder, io.Closer, error) {
	switch cfg.Type {
	case "fastembed", "":
		fc := fastembed.Config{}
		if cfg.FastEmbed != nil {
			fc = fastembed.Config{Model: cfg.FastEmbed.Model, CacheDir: cfg.FastEmbed.CacheDir, MaxLength: cfg.FastEmbed.MaxLength}
		}
		e, err := fastembed.New(fc)
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("fastembed embedder init failed: %w", err)
		}
		return e, e, nil
	case "openai":
		if cfg.OpenAI == nil {
			return nil, nopCloser{}, fmt.Errorf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:    cfg.OpenAI.BaseURL,
			APIKeyEnv:  cfg.OpenAI.APIKeyEnv,
			Model:      cfg.OpenAI.Model,
			Timeout:    time.Duration(cfg.OpenAI.TimeoutSecs) * time.Second,
			MaxRetries: cfg.OpenAI.MaxRetries,
		})
		if err != nil {
			return nil, nopCloser{}, fmt.Errorf("openai embedder init failed: %w", err)
		}
		return client, nopCloser{}, nil
	case "tfidf":
		return tfidf.NewEmbedder(), nopCloser{}, nil
	default:
		return nil, nopCloser{}, fmt.Errorf("unknown embedder: %s", cfg.Type)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
