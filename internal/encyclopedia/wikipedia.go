// Package encyclopedia fetches articles from Wikipedia and parses them
// into titled sections.
package encyclopedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"medqa/internal/domain"
	"medqa/internal/logging"
)

// ErrEmptyTopic is returned when Fetch is called without a topic.
var ErrEmptyTopic = errors.New("topic must not be empty")

// Config configures the Wikipedia client.
type Config struct {
	// BaseURL overrides the API endpoint; defaults to https://<lang>.wikipedia.org/w/api.php
	BaseURL           string
	Language          string
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Wikipedia fetches articles through the MediaWiki Action API.
type Wikipedia struct {
	endpoint  string
	userAgent string
	timeout   time.Duration
	client    *http.Client
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewWikipedia creates a fetcher using the provided configuration.
func NewWikipedia(cfg Config, logger *zap.Logger) *Wikipedia {
	lang := cfg.Language
	if lang == "" {
		lang = "en"
	}
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang)
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}
	return &Wikipedia{
		endpoint:  endpoint,
		userAgent: cfg.UserAgent,
		timeout:   timeout,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(rate.Limit(rps), burst),
		logger:    logging.OrNop(logger).Named("encyclopedia"),
	}
}

type queryResponse struct {
	Query struct {
		Pages []struct {
			Title   string `json:"title"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Fetch retrieves the article for topic. Lookup and network failures are
// reported as a Document with Exists == false rather than as an error.
func (w *Wikipedia) Fetch(ctx context.Context, topic string) (*domain.Document, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	notFound := &domain.Document{Title: topic}

	page, err := w.query(ctx, topic)
	if err != nil {
		w.logger.Warn("article lookup failed", zap.String("topic", topic), zap.Error(err))
		return notFound, nil
	}
	if page == nil {
		w.logger.Info("article not found", zap.String("topic", topic))
		return notFound, nil
	}

	_, sections := ParseSections(page.Extract)
	w.logger.Debug("article fetched",
		zap.String("topic", topic),
		zap.String("title", page.Title),
		zap.Int("sections", len(sections)),
	)
	return &domain.Document{Title: page.Title, Exists: true, Sections: sections}, nil
}

type page struct {
	Title   string
	Extract string
}

func (w *Wikipedia) query(ctx context.Context, topic string) (*page, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	params := url.Values{
		"action":          {"query"},
		"format":          {"json"},
		"formatversion":   {"2"},
		"prop":            {"extracts"},
		"explaintext":     {"1"},
		"exsectionformat": {"wiki"},
		"redirects":       {"1"},
		"titles":          {topic},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if w.userAgent != "" {
		req.Header.Set("User-Agent", w.userAgent)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("wikipedia query failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	for _, p := range out.Query.Pages {
		if p.Missing || p.Invalid {
			continue
		}
		return &page{Title: p.Title, Extract: p.Extract}, nil
	}
	return nil, nil
}
