package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "fastembed", cfg.Embedder.Type)
	require.NotNil(t, cfg.Embedder.FastEmbed)
	assert.Equal(t, "sentence-transformers/all-MiniLM-L6-v2", cfg.Embedder.FastEmbed.Model)
	assert.Equal(t, "en", cfg.Encyclopedia.Language)
	assert.Equal(t, "google", cfg.Translator.Type)
	assert.Equal(t, "en", cfg.Translator.Target)
	assert.InDelta(t, DefaultConfidenceThreshold, cfg.Matcher.ConfidenceThreshold, 1e-9)
	assert.Equal(t, 3, cfg.Summarizer.MaxSentences)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg *AppConfig)
	}{
		{
			name: "openai defaults filled",
			yaml: "embedder:\n  type: openai\n  openai:\n    model: nomic-embed-text\n",
			check: func(t *testing.T, cfg *AppConfig) {
				require.NotNil(t, cfg.Embedder.OpenAI)
				assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
				assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
				assert.Equal(t, "nomic-embed-text", cfg.Embedder.OpenAI.Model)
				assert.Equal(t, 30, cfg.Embedder.OpenAI.TimeoutSecs)
				assert.Equal(t, 0, cfg.Embedder.OpenAI.MaxRetries)
				assert.Nil(t, cfg.Embedder.FastEmbed)
			},
		},
		{
			name: "openai without block gets defaults",
			yaml: "embedder:\n  type: openai\n",
			check: func(t *testing.T, cfg *AppConfig) {
				require.NotNil(t, cfg.Embedder.OpenAI)
				assert.Equal(t, "https://api.openai.com/v1", cfg.Embedder.OpenAI.BaseURL)
				assert.Equal(t, "OPENAI_API_KEY", cfg.Embedder.OpenAI.APIKeyEnv)
				assert.Equal(t, "text-embedding-3-small", cfg.Embedder.OpenAI.Model)
			},
		},
		{
			name: "explicit threshold kept",
			yaml: "matcher:\n  confidence_threshold: 0.4\n",
			check: func(t *testing.T, cfg *AppConfig) {
				assert.InDelta(t, 0.4, cfg.Matcher.ConfidenceThreshold, 1e-9)
			},
		},
		{
			name: "threshold disabled",
			yaml: "matcher:\n  confidence_threshold: -1\n",
			check: func(t *testing.T, cfg *AppConfig) {
				assert.InDelta(t, -1, cfg.Matcher.ConfidenceThreshold, 1e-9)
			},
		},
		{
			name: "omitted threshold defaults",
			yaml: "translator:\n  type: none\n",
			check: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, "none", cfg.Translator.Type)
				assert.InDelta(t, DefaultConfidenceThreshold, cfg.Matcher.ConfidenceThreshold, 1e-9)
			},
		},
		{
			name: "encyclopedia language",
			yaml: "encyclopedia:\n  language: de\n  timeout_secs: 3\n",
			check: func(t *testing.T, cfg *AppConfig) {
				assert.Equal(t, "de", cfg.Encyclopedia.Language)
				assert.Equal(t, 3, cfg.Encyclopedia.TimeoutSecs)
				assert.InDelta(t, 5.0, cfg.Encyclopedia.RequestsPerSecond, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("embedder: [unterminated"))
	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Translator.Type = "none"
	cfg.Matcher.ConfidenceThreshold = 0.5

	require.NoError(t, Save(path, cfg))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
