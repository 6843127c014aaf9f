// Package service sequences the question-answering pipeline.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"medqa/internal/domain"
	"medqa/internal/extract"
	"medqa/internal/logging"
	"medqa/internal/qa"
)

var (
	// ErrMissingInput is returned when the topic or the question is empty.
	ErrMissingInput = errors.New("please enter both disease name and your question")

	// ErrTopicNotFound is returned when the encyclopedia has no page for the topic.
	ErrTopicNotFound = errors.New("could not find information for that disease")

	// ErrNoInformation is returned when the page has none of the known sections.
	ErrNoInformation = errors.New("no usable information found for that disease")
)

// Matcher selects the best candidate pair for a query.
type Matcher interface {
	Match(ctx context.Context, query string, candidates []domain.QAPair) (domain.MatchResult, error)
}

// QAServiceImpl runs fetch, extract, synthesize, translate and match for one question.
type QAServiceImpl struct {
	fetcher             domain.Fetcher
	translator          domain.Translator
	matcher             Matcher
	summarizer          domain.Summarizer
	summaryMaxSentences int
	logger              *zap.Logger
}

var _ domain.QAService = (*QAServiceImpl)(nil)

// NewQAService wires the pipeline stages. summarizer may be nil.
func NewQAService(fetcher domain.Fetcher, translator domain.Translator, matcher Matcher, summarizer domain.Summarizer, summaryMaxSentences int, logger *zap.Logger) *QAServiceImpl {
	return &QAServiceImpl{
		fetcher:             fetcher,
		translator:          translator,
		matcher:             matcher,
		summarizer:          summarizer,
		summaryMaxSentences: summaryMaxSentences,
		logger:              logging.OrNop(logger).Named("service"),
	}
}

// Ask answers question about topic.
func (s *QAServiceImpl) Ask(ctx context.Context, topic, question string) (*domain.Answer, error) {
	topic = strings.TrimSpace(topic)
	question = strings.TrimSpace(question)
	if topic == "" || question == "" {
		return nil, ErrMissingInput
	}

	id := uuid.NewString()
	log := s.logger.With(zap.String("request_id", id), zap.String("topic", topic))
	log.Info("question received", zap.String("question", question))

	doc, err := s.fetcher.Fetch(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("fetching %q: %w", topic, err)
	}
	if doc == nil || !doc.Exists {
		log.Info("topic not found")
		return nil, ErrTopicNotFound
	}

	info := extract.Extract(doc)
	if info.Found() == 0 {
		log.Info("no known sections in article", zap.String("title", doc.Title))
		return nil, ErrNoInformation
	}
	pairs := qa.Synthesize(info)

	translated := s.translator.Translate(ctx, question)
	if translated != question {
		log.Debug("question translated", zap.String("translated", translated))
	}

	match, err := s.matcher.Match(ctx, translated, pairs)
	if err != nil {
		return nil, fmt.Errorf("matching question: %w", err)
	}

	answer := &domain.Answer{
		RequestID:  id,
		Topic:      topic,
		Title:      doc.Title,
		Question:   question,
		Translated: translated,
		Match:      match,
		Preview:    match.Answer,
	}
	if s.summarizer != nil && match.Confident {
		if preview, err := s.summarizer.Summarize(match.Answer, s.summaryMaxSentences); err != nil {
			log.Warn("summarizing answer failed", zap.Error(err))
		} else {
			answer.Preview = preview
		}
	}

	log.Info("question answered",
		zap.String("category", match.Pair.Category.String()),
		zap.Float64("score", match.Score),
		zap.Bool("confident", match.Confident),
	)
	return answer, nil
}

// Outcome classifies a pipeline error for presentation.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeWarning
	OutcomeNotFound
	OutcomeException
)

// Classify maps an error returned by Ask to the panel it should be shown in.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrMissingInput):
		return OutcomeWarning
	case errors.Is(err, ErrTopicNotFound), errors.Is(err, ErrNoInformation):
		return OutcomeNotFound
	default:
		return OutcomeException
	}
}
