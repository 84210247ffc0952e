package model

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the process configuration, resolved from flags, environment
// (AUDITINTEL_*), the config file, and defaults, in that order
type Config struct {
	Cache       CacheConfig       `yaml:"cache"`
	Store       StoreConfig       `yaml:"store"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	LLM         LLMConfig         `yaml:"llm"`
	Output      OutputConfig      `yaml:"output"`
}

// CacheConfig controls the analysis result cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// StoreConfig controls the analysis history database
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// RateLimitConfig throttles letter-drafting calls in batch runs
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size"`
}

// LLMConfig configures the optional letter drafter.
// The drafter runs only after the pipeline has produced its result and
// never influences classification, risk, or playbook decisions.
type LLMConfig struct {
	Provider  string `yaml:"provider"` // "openai", "anthropic", "ollama", "" (disabled)
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // From environment only
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`

	// Proxy settings for providers reached over HTTP
	HTTPProxy  string `yaml:"http_proxy"`
	HTTPSProxy string `yaml:"https_proxy"`
	NoProxy    string `yaml:"no_proxy"`
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose           bool `yaml:"verbose"`
	IncludeDisclaimer bool `yaml:"include_disclaimer"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	base := filepath.Join(home, ".auditintel")

	return &Config{
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       filepath.Join(base, "cache"),
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    filepath.Join(base, "history.db"),
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Output: OutputConfig{
			Verbose:           false,
			IncludeDisclaimer: true,
		},
	}
}
