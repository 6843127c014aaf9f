//go:build !cgo

package fastembed

import "context"

// Embedder is unavailable in builds without cgo.
type Embedder struct{}

// New validates cfg and reports that fastembed is not available.
func New(cfg Config) (*Embedder, error) {
	if _, _, err := resolve(&cfg); err != nil {
		return nil, err
	}
	return nil, ErrFastEmbedNotAvailable
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "fastembed" }

// Prepare is a no-op.
func (e *Embedder) Prepare(corpus []string) error { return nil }

// Dimension returns 0 when cgo is not available.
func (e *Embedder) Dimension() int { return 0 }

// Embed returns ErrFastEmbedNotAvailable.
func (e *Embedder) Embed(_ context.Context, _ []string) ([][]float64, error) {
	return nil, ErrFastEmbedNotAvailable
}

// Close is a no-op when cgo is not available.
func (e *Embedder) Close() error { return nil }
