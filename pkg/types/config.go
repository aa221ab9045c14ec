package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "problem-maker/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the paper search stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// SerpAPIKey is the SerpApi key for Google Scholar queries. When
	// empty, search falls back to deterministic sample papers.
	SerpAPIKey string `json:"serpapi_key,omitempty" yaml:"serpapi_key,omitempty"`

	// MaxResults is the number of results requested per query (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// AIConfig holds settings for stages that call an LLM API.
type AIConfig struct {
	// ModelType selects the provider: gemini, openai, deepseek, doubao, tongyi.
	ModelType string `json:"model_type" yaml:"model_type"`

	// APIKey is the authentication key for the selected provider.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// RatingConfig holds settings for the PK rating store.
type RatingConfig struct {
	// DBPath is the SQLite database file (default "data/pk.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Addr is the listen address (default ":8787").
	Addr string `json:"addr" yaml:"addr"`

	// LogMode selects zap config: "dev" or "prod".
	LogMode string `json:"log_mode" yaml:"log_mode"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	Search SearchConfig `json:"search" yaml:"search"`
	AI     AIConfig     `json:"ai" yaml:"ai"`
	Rating RatingConfig `json:"rating" yaml:"rating"`
	Server ServerConfig `json:"server" yaml:"server"`
}
