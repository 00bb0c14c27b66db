package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "techaware/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the arXiv fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Categories lists the arXiv category codes to query (e.g. "cs.AI").
	Categories []string `json:"categories" yaml:"categories"`

	// MaxResults is the maximum number of entries to request (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DaysBack is the lookback window in days (default 7). Entries
	// published before the window start are dropped.
	DaysBack int `json:"days_back" yaml:"days_back"`

	// RequestInterval is the minimum spacing between arXiv API calls
	// (default 3s, per the arXiv API terms of use).
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// AIConfig holds shared settings for stages that call a Generative AI API.
type AIConfig struct {
	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// SummarizerConfig holds settings for the summarization stage.
type SummarizerConfig struct {
	AIConfig `yaml:",inline"`

	// MaxInputChars truncates the text submitted to the model (default 1024).
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`

	// MaxTokens bounds the model response length (default 512).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`

	// RulesFile optionally points to a YAML file overriding the built-in
	// tag keyword table.
	RulesFile string `json:"rules_file,omitempty" yaml:"rules_file,omitempty"`
}

// StoreConfig holds settings for the persisted paper collection.
type StoreConfig struct {
	// DataDir is the directory holding papers.json and subscriptions.json.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// WindowSize bounds the collection to the N most recently published
	// records (default 100).
	WindowSize int `json:"window_size" yaml:"window_size"`
}

// ServerConfig holds settings for the HTTP API server.
type ServerConfig struct {
	// Host is the listen address (default "0.0.0.0").
	Host string `json:"host" yaml:"host"`

	// Port is the listen port (default 8000).
	Port int `json:"port" yaml:"port"`
}

// BotConfig holds settings for the Telegram front end.
type BotConfig struct {
	// Token is the Telegram bot token. Empty disables the bot.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// FrontendURL is the web UI linked from bot messages.
	FrontendURL string `json:"frontend_url" yaml:"frontend_url"`

	// DigestSize is the number of papers in a digest (default 5).
	DigestSize int `json:"digest_size" yaml:"digest_size"`

	// DigestSchedule is the cron expression for the daily digest
	// (default "0 9 * * *", evaluated in UTC).
	DigestSchedule string `json:"digest_schedule" yaml:"digest_schedule"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch      FetchConfig      `json:"fetch" yaml:"fetch"`
	Summarizer SummarizerConfig `json:"summarizer" yaml:"summarizer"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Server     ServerConfig     `json:"server" yaml:"server"`
	Bot        BotConfig        `json:"bot" yaml:"bot"`
}
