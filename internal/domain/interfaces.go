package domain

import "context"

// Fetcher retrieves the source document for a topic.
// A topic with no page yields a Document with Exists == false.
type Fetcher interface {
	Fetch(ctx context.Context, topic string) (*Document, error)
}

// Translator normalizes text to the working language.
// Implementations return the input unchanged when translation fails.
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// Embedder converts free text into numeric vector representations.
// Implementations may require a preparation phase over the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus []string) error
	Dimension() int
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// QAService defines the operations exposed by the application core.
type QAService interface {
	Ask(ctx context.Context, topic, question string) (*Answer, error)
}
