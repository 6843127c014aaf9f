package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrEmptyTranslation is returned when the service answers without text.
var ErrEmptyTranslation = errors.New("empty translation")

// GoogleConfig configures the Google Translate client.
type GoogleConfig struct {
	// BaseURL defaults to https://translate.googleapis.com/translate_a/single
	BaseURL string
	Target  string
	Timeout time.Duration
}

// Google calls the public Google Translate endpoint with an auto-detected
// source language.
type Google struct {
	endpoint string
	target   string
	client   *http.Client
}

// NewGoogle creates a Google Translate backend.
func NewGoogle(cfg GoogleConfig) *Google {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://translate.googleapis.com/translate_a/single"
	}
	if cfg.Target == "" {
		cfg.Target = "en"
	}
	t := cfg.Timeout
	if t == 0 {
		t = 10 * time.Second
	}
	return &Google{endpoint: cfg.BaseURL, target: cfg.Target, client: &http.Client{Timeout: t}}
}

// TranslateText translates text from the detected language to the target.
func (g *Google) TranslateText(ctx context.Context, text string) (string, error) {
	params := url.Values{
		"client": {"gtx"},
		"sl":     {"auto"},
		"tl":     {g.target},
		"dt":     {"t"},
		"q":      {text},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("google translate failed: %s", resp.Status)
	}

	// Response shape: [[["translated","original",...],...],null,"fr",...]
	var out []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(out) == 0 {
		return "", ErrEmptyTranslation
	}
	var segments [][]any
	if err := json.Unmarshal(out[0], &segments); err != nil {
		return "", fmt.Errorf("decoding segments: %w", err)
	}
	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			b.WriteString(s)
		}
	}
	translated := strings.TrimSpace(b.String())
	if translated == "" {
		return "", ErrEmptyTranslation
	}
	return translated, nil
}
