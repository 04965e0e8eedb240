package config

import "time"

// AppConfig holds runtime configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	Paths          RuntimePathsConfig    `yaml:"paths"`
	Summarizer     SummarizerConfig      `yaml:"summarizer"`
	Fetch          FetchConfig           `yaml:"fetch"`
	Translation    TranslationConfig     `yaml:"translation"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Mongo          MongoRuntimeConfig    `yaml:"mongo"`
	Redis          RedisRuntimeConfig    `yaml:"redis"`
	Bark           BarkConfig            `yaml:"bark"`
}

// SummarizerConfig selects the remote inference API used for summaries.
type SummarizerConfig struct {
	Provider       string `yaml:"provider"`
	APIKey         string `yaml:"api_key"`
	Endpoint       string `yaml:"endpoint"`
	Model          string `yaml:"model"`
	MinLength      int    `yaml:"min_length"`
	MaxLength      int    `yaml:"max_length"`
	InputLimit     int    `yaml:"input_limit"`
	TimeoutSeconds int    `yaml:"timeout_seconds"` // 0 = no client timeout
}

type FetchConfig struct {
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxBodyBytes   int64  `yaml:"max_body_bytes"`
	Mode           string `yaml:"mode"` // selectors | readability
}

type TranslationConfig struct {
	DictionaryPath string `yaml:"dictionary_path"`
}

// DatabaseRuntimeConfig describes the MySQL structured store. Empty DSN and host disables it.
type DatabaseRuntimeConfig struct {
	DSN       string            `yaml:"dsn"`
	Host      string            `yaml:"host"`
	Port      int               `yaml:"port"`
	User      string            `yaml:"user"`
	Password  string            `yaml:"password"`
	Name      string            `yaml:"name"`
	Charset   string            `yaml:"charset"`
	ParseTime bool              `yaml:"parse_time"`
	Loc       string            `yaml:"loc"`
	Params    map[string]string `yaml:"params"`
}

type MongoRuntimeConfig struct {
	URI                   string `yaml:"uri"`
	Database              string `yaml:"database"`
	Collection            string `yaml:"collection"`
	ConnectTimeoutSeconds int    `yaml:"connect_timeout_seconds"`
}

type RedisRuntimeConfig struct {
	URL                    string `yaml:"url"`
	SummaryCacheTTLSeconds int    `yaml:"summary_cache_ttl_seconds"`
	RateLimitPerSecond     int    `yaml:"rate_limit_per_second"` // 0 disables
}

type BarkConfig struct {
	Key       string `yaml:"key"`
	ServerURL string `yaml:"server_url"`
	Title     string `yaml:"title"`
}

type RuntimePathsConfig struct {
	Logs string `yaml:"logs"`
}

func seconds(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

// Timeout returns the summarizer HTTP timeout, 0 meaning unbounded.
func (c SummarizerConfig) Timeout() time.Duration { return seconds(c.TimeoutSeconds) }

func (c FetchConfig) Timeout() time.Duration { return seconds(c.TimeoutSeconds) }

func (c MongoRuntimeConfig) ConnectTimeout() time.Duration { return seconds(c.ConnectTimeoutSeconds) }

func (c MongoRuntimeConfig) Enabled() bool { return c.URI != "" }

func (c RedisRuntimeConfig) Enabled() bool { return c.URL != "" }

func (c RedisRuntimeConfig) SummaryCacheTTL() time.Duration {
	return seconds(c.SummaryCacheTTLSeconds)
}
