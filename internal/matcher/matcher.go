// Package matcher picks the synthesized question closest to a user query.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"medqa/internal/domain"
	"medqa/internal/logging"
)

// ErrNoCandidates is returned when Match is called without candidates.
var ErrNoCandidates = errors.New("no candidate questions to match against")

// DefaultThreshold is the score below which an answer is reported as Unknown.
const DefaultThreshold = 0.65

// Matcher ranks candidate questions by cosine similarity to the query.
type Matcher struct {
	embedder  domain.Embedder
	threshold float64
	logger    *zap.Logger
}

// New creates a matcher. A negative threshold disables the confidence cutoff.
func New(embedder domain.Embedder, threshold float64, logger *zap.Logger) *Matcher {
	return &Matcher{embedder: embedder, threshold: threshold, logger: logging.OrNop(logger).Named("matcher")}
}

// Match embeds the query together with every candidate question and returns
// the best candidate. Ties go to the earliest candidate.
func (m *Matcher) Match(ctx context.Context, query string, candidates []domain.QAPair) (domain.MatchResult, error) {
	if len(candidates) == 0 {
		return domain.MatchResult{}, ErrNoCandidates
	}

	texts := make([]string, 0, len(candidates)+1)
	for _, c := range candidates {
		texts = append(texts, c.Question)
	}
	texts = append(texts, query)

	if err := m.embedder.Prepare(texts); err != nil {
		return domain.MatchResult{}, fmt.Errorf("preparing embedder: %w", err)
	}
	vectors, err := m.embedder.Embed(ctx, texts)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("embedding questions: %w", err)
	}
	if len(vectors) != len(texts) {
		return domain.MatchResult{}, fmt.Errorf("embedding questions: got %d vectors for %d texts", len(vectors), len(texts))
	}

	queryVec := vectors[len(vectors)-1]
	scores := make([]float64, len(candidates))
	for i := range candidates {
		scores[i] = Cosine(queryVec, vectors[i])
	}
	best := Argmax(scores)

	res := domain.MatchResult{
		Pair:      candidates[best],
		Answer:    candidates[best].Answer,
		Score:     Round2(scores[best]),
		Confident: true,
	}
	if m.threshold >= 0 && scores[best] < m.threshold {
		res.Answer = domain.Unknown
		res.Confident = false
	}

	m.logger.Debug("matched question",
		zap.String("embedder", m.embedder.Name()),
		zap.String("question", res.Pair.Question),
		zap.Float64("score", scores[best]),
		zap.Bool("confident", res.Confident),
	)
	return res, nil
}

// Cosine returns (a·b)/(|a||b|) clamped to [-1, 1]. A zero vector has
// similarity 0 with everything.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, v := range a {
		na += v * v
	}
	for _, v := range b {
		nb += v * v
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return math.Max(-1, math.Min(1, sim))
}

// Argmax returns the index of the largest value, preferring the first on ties.
func Argmax(vals []float64) int {
	best := 0
	for i := 1; i < len(vals); i++ {
		if vals[i] > vals[best] {
			best = i
		}
	}
	return best
}

// Round2 rounds to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
