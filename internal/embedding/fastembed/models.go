// Package fastembed embeds text locally with ONNX sentence-transformer models.
package fastembed

import (
	"errors"
	"fmt"
	"path/filepath"
)

// DefaultModel is the sentence-transformer used when none is configured.
const DefaultModel = "sentence-transformers/all-MiniLM-L6-v2"

var (
	// ErrUnsupportedModel is returned for model names without a known ONNX build.
	ErrUnsupportedModel = errors.New("unsupported fastembed model")

	// ErrFastEmbedNotAvailable is returned when the binary was built without cgo.
	ErrFastEmbedNotAvailable = errors.New("fastembed: not available (binary built without CGO support, use the openai or tfidf embedder instead)")
)

// Config configures the local embedder.
type Config struct {
	// Model is a friendly model name, e.g. sentence-transformers/all-MiniLM-L6-v2.
	Model string
	// CacheDir holds downloaded model files. Defaults to ./local_cache
	CacheDir string
	// MaxLength is the maximum input sequence length. Defaults to 256.
	MaxLength int
}

// modelIDs maps friendly model names to fastembed model identifiers.
var modelIDs = map[string]string{
	"sentence-transformers/all-MiniLM-L6-v2": "fast-all-MiniLM-L6-v2",
	"BAAI/bge-small-en-v1.5":                 "fast-bge-small-en-v1.5",
	"BAAI/bge-base-en-v1.5":                  "fast-bge-base-en-v1.5",
	"fast-all-MiniLM-L6-v2":                  "fast-all-MiniLM-L6-v2",
	"fast-bge-small-en-v1.5":                 "fast-bge-small-en-v1.5",
	"fast-bge-base-en-v1.5":                  "fast-bge-base-en-v1.5",
}

// modelDimensions maps fastembed model identifiers to their embedding dimensions.
var modelDimensions = map[string]int{
	"fast-all-MiniLM-L6-v2":  384,
	"fast-bge-small-en-v1.5": 384,
	"fast-bge-base-en-v1.5":  768,
}

// resolve validates cfg and fills defaults, returning the model id and dimension.
func resolve(cfg *Config) (string, int, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	id, ok := modelIDs[cfg.Model]
	if !ok {
		return "", 0, fmt.Errorf("%w: %q (supported: sentence-transformers/all-MiniLM-L6-v2, BAAI/bge-small-en-v1.5, BAAI/bge-base-en-v1.5)", ErrUnsupportedModel, cfg.Model)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = filepath.Join(".", "local_cache")
	}
	if cfg.MaxLength == 0 {
		cfg.MaxLength = 256
	}
	return id, modelDimensions[id], nil
}
