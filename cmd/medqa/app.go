package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"medqa/internal/config"
	"medqa/internal/domain"
	"medqa/internal/embedding"
	"medqa/internal/encyclopedia"
	"medqa/internal/logging"
	"medqa/internal/matcher"
	"medqa/internal/service"
	"medqa/internal/summarizer"
	"medqa/internal/translate"
)

// app holds the assembled pipeline and the resources it owns.
type app struct {
	service *service.QAServiceImpl
	logger  *zap.Logger
	closer  io.Closer
}

func newApp(cfg *config.AppConfig) (*app, error) {
	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, File: cfg.Log.File})
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	emb, closer, err := embedding.New(cfg.Embedder)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	logger.Info("embedder ready", zap.String("embedder", emb.Name()))

	fetcher := encyclopedia.NewWikipedia(encyclopedia.Config{
		BaseURL:           cfg.Encyclopedia.BaseURL,
		Language:          cfg.Encyclopedia.Language,
		UserAgent:         cfg.Encyclopedia.UserAgent,
		Timeout:           time.Duration(cfg.Encyclopedia.TimeoutSecs) * time.Second,
		RequestsPerSecond: cfg.Encyclopedia.RequestsPerSecond,
		Burst:             cfg.Encyclopedia.Burst,
	}, logger)

	tr, err := newTranslator(cfg.Translator, logger)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	sum, err := newSummarizer(cfg.Summarizer)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	m := matcher.New(emb, cfg.Matcher.ConfidenceThreshold, logger)
	svc := service.NewQAService(fetcher, tr, m, sum, cfg.Summarizer.MaxSentences, logger)
	return &app{service: svc, logger: logger, closer: closer}, nil
}

func newTranslator(cfg config.TranslatorConfig, logger *zap.Logger) (domain.Translator, error) {
	switch cfg.Type {
	case "google", "":
		backend := translate.NewGoogle(translate.GoogleConfig{
			BaseURL: cfg.BaseURL,
			Target:  cfg.Target,
			Timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
		})
		return translate.NewFailOpen(backend, logger), nil
	case "none":
		return translate.Identity{}, nil
	default:
		return nil, fmt.Errorf("unknown translator: %s", cfg.Type)
	}
}

func newSummarizer(cfg config.SummarizerConfig) (domain.Summarizer, error) {
	switch cfg.Type {
	case "frequency", "":
		return summarizer.NewFrequencySummarizer(), nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Type)
	}
}

// Close releases the embedding model and flushes logs.
func (a *app) Close() error {
	err := a.closer.Close()
	_ = a.logger.Sync()
	return err
}
