//go:build cgo

package fastembed

import (
	"context"
	"fmt"
	"sync"

	fastembed "github.com/anush008/fastembed-go"
)

const batchSize = 32

// Embedder provides embedding generation using local ONNX models.
type Embedder struct {
	model     *fastembed.FlagEmbedding
	modelName string
	dimension int
	mu        sync.RWMutex
}

// New loads the configured model, downloading it to the cache dir if needed.
func New(cfg Config) (*Embedder, error) {
	id, dim, err := resolve(&cfg)
	if err != nil {
		return nil, err
	}

	// Disable progress bar; the TUI owns the terminal
	showProgress := false
	flagEmbed, err := fastembed.NewFlagEmbedding(&fastembed.InitOptions{
		Model:                fastembed.EmbeddingModel(id),
		CacheDir:             cfg.CacheDir,
		MaxLength:            cfg.MaxLength,
		ShowDownloadProgress: &showProgress,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing fastembed: %w", err)
	}
	return &Embedder{model: flagEmbed, modelName: cfg.Model, dimension: dim}, nil
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "fastembed:" + e.modelName }

// Prepare is a no-op; the model is pretrained.
func (e *Embedder) Prepare(corpus []string) error { return nil }

// Dimension returns the embedding dimension for the current model.
func (e *Embedder) Dimension() int { return e.dimension }

// Embed returns one vector per text. No query/passage prefixes are added,
// so queries and candidate questions share one vector space.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	raw, err := e.model.Embed(texts, batchSize)
	if err != nil {
		return nil, fmt.Errorf("fastembed: %w", err)
	}
	out := make([][]float64, len(raw))
	for i, v := range raw {
		vec := make([]float64, len(v))
		for j, x := range v {
			vec[j] = float64(x)
		}
		out[i] = vec
	}
	return out, nil
}

// Close releases the ONNX session.
func (e *Embedder) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model != nil {
		return e.model.Destroy()
	}
	return nil
}
