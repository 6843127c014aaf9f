package tfidf

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func norm(v []float64) float64 {
	s := 0.0
	for _, x := range v {
		s += x * x
	}
	return math.Sqrt(s)
}

func TestEmbedder_NotPrepared(t *testing.T) {
	_, err := NewEmbedder().Embed(context.Background(), []string{"fever"})
	assert.Error(t, err)
}

func TestEmbedder_PrepareErrors(t *testing.T) {
	e := NewEmbedder()
	assert.Error(t, e.Prepare(nil))
	assert.Error(t, e.Prepare([]string{"the of and", "123"}))
}

func TestEmbedder_Embed(t *testing.T) {
	e := NewEmbedder()
	corpus := []string{
		"What are the symptoms of this disease?",
		"What are the causes of this disease?",
		"what causes this disease",
	}
	require.NoError(t, e.Prepare(corpus))
	// what, symptoms, disease, causes
	assert.Equal(t, 4, e.Dimension())
	assert.Equal(t, "tfidf", e.Name())

	vecs, err := e.Embed(context.Background(), append(corpus, "zzz unknown words"))
	require.NoError(t, err)
	require.Len(t, vecs, 4)

	for _, v := range vecs[:3] {
		assert.Len(t, v, 4)
		assert.InDelta(t, 1.0, norm(v), 1e-9)
	}
	assert.Equal(t, vecs[1], vecs[2], "same terms give the same vector")
	assert.Zero(t, norm(vecs[3]))
}

func TestEmbedder_PrepareReplacesVocabulary(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"fever cough"}))
	assert.Equal(t, 2, e.Dimension())
	require.NoError(t, e.Prepare([]string{"rash", "itching swelling"}))
	assert.Equal(t, 3, e.Dimension())
}

func TestEmbedder_ContextCanceled(t *testing.T) {
	e := NewEmbedder()
	require.NoError(t, e.Prepare([]string{"fever"}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Embed(ctx, []string{"fever"})
	assert.ErrorIs(t, err, context.Canceled)
}
