package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FastEmbedConfig configures the local ONNX embedder.
type FastEmbedConfig struct {
	Model     string `yaml:"model"`
	CacheDir  string `yaml:"cache_dir"`
	MaxLength int    `yaml:"max_length"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries"`
}

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type      string                `yaml:"type"`
	FastEmbed *FastEmbedConfig      `yaml:"fastembed,omitempty"`
	OpenAI    *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// EncyclopediaConfig configures the Wikipedia fetcher.
type EncyclopediaConfig struct {
	Language          string  `yaml:"language"`
	BaseURL           string  `yaml:"base_url,omitempty"`
	UserAgent         string  `yaml:"user_agent"`
	TimeoutSecs       int     `yaml:"timeout_secs"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// TranslatorConfig selects and configures the query translator.
type TranslatorConfig struct {
	Type        string `yaml:"type"`
	BaseURL     string `yaml:"base_url,omitempty"`
	Target      string `yaml:"target"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// MatcherConfig configures the semantic matcher.
// A negative threshold disables the confidence cutoff.
type MatcherConfig struct {
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

// SummarizerConfig selects and configures the answer preview summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Embedder     EmbedderConfig     `yaml:"embedder"`
	Encyclopedia EncyclopediaConfig `yaml:"encyclopedia"`
	Translator   TranslatorConfig   `yaml:"translator"`
	Matcher      MatcherConfig      `yaml:"matcher"`
	Summarizer   SummarizerConfig   `yaml:"summarizer"`
	Log          LogConfig          `yaml:"log"`
}

// DefaultConfidenceThreshold is the score below which a match is reported as Unknown.
const DefaultConfidenceThreshold = 0.65

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes YAML config data and fills in defaults for unset fields.
func Parse(data []byte) (*AppConfig, error) {
	cfg := AppConfig{Matcher: MatcherConfig{ConfidenceThreshold: DefaultConfidenceThreshold}}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/medqa/config.yaml.
// If neither exists, it writes defaults to ~/.config/medqa/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "medqa", "config.yaml"), nil
}

// DefaultLogFile returns the log file used while the TUI owns the terminal.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "medqa.log")
	}
	return filepath.Join(dir, "medqa", "medqa.log")
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	cfg := &AppConfig{
		Embedder:   EmbedderConfig{Type: "fastembed"},
		Translator: TranslatorConfig{Type: "google"},
		Matcher:    MatcherConfig{ConfidenceThreshold: DefaultConfidenceThreshold},
		Summarizer: SummarizerConfig{Type: "frequency"},
	}
	applyConfigDefaults(cfg)
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "fastembed"
	}
	if cfg.Embedder.Type == "fastembed" {
		if cfg.Embedder.FastEmbed == nil {
			cfg.Embedder.FastEmbed = &FastEmbedConfig{}
		}
		if cfg.Embedder.FastEmbed.Model == "" {
			cfg.Embedder.FastEmbed.Model = "sentence-transformers/all-MiniLM-L6-v2"
		}
		if cfg.Embedder.FastEmbed.MaxLength == 0 {
			cfg.Embedder.FastEmbed.MaxLength = 256
		}
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIEmbedderConfig{}
		}
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
	}

	if cfg.Encyclopedia.Language == "" {
		cfg.Encyclopedia.Language = "en"
	}
	if cfg.Encyclopedia.UserAgent == "" {
		cfg.Encyclopedia.UserAgent = "medqa/1.0 (medical question answering over Wikipedia)"
	}
	if cfg.Encyclopedia.TimeoutSecs == 0 {
		cfg.Encyclopedia.TimeoutSecs = 15
	}
	if cfg.Encyclopedia.RequestsPerSecond == 0 {
		cfg.Encyclopedia.RequestsPerSecond = 5
	}
	if cfg.Encyclopedia.Burst == 0 {
		cfg.Encyclopedia.Burst = 5
	}

	if cfg.Translator.Type == "" {
		cfg.Translator.Type = "google"
	}
	if cfg.Translator.Target == "" {
		cfg.Translator.Target = "en"
	}
	if cfg.Translator.TimeoutSecs == 0 {
		cfg.Translator.TimeoutSecs = 10
	}

	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = 3
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}
