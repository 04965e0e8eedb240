package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at configPath, then applies .env files and process env.
// A missing file at the default path is not an error; every other read failure is.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decodeYAML(content, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigPath:
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	loadDotEnv(".env.local", ".env")
	applyEnv(&cfg, os.Getenv)
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return &cfg, nil
}

func decodeYAML(content []byte, cfg *AppConfig) error {
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Summarizer: SummarizerConfig{
			Provider:   defaultProvider,
			MinLength:  defaultSummaryMinLength,
			MaxLength:  defaultSummaryMaxLength,
			InputLimit: defaultSummaryInputLimit,
		},
		Fetch: FetchConfig{
			UserAgent:    defaultFetchUserAgent,
			MaxBodyBytes: defaultFetchMaxBodyBytes,
			Mode:         ExtractModeSelectors,
		},
		Database: DatabaseRuntimeConfig{
			Port:      defaultDBPort,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Mongo: MongoRuntimeConfig{
			Database:              defaultMongoDatabase,
			Collection:            defaultMongoCollection,
			ConnectTimeoutSeconds: defaultMongoTimeout,
		},
		Redis: RedisRuntimeConfig{
			SummaryCacheTTLSeconds: defaultSummaryCacheTTL,
			RateLimitPerSecond:     defaultRateLimit,
		},
		Bark: BarkConfig{
			ServerURL: defaultBarkServerURL,
			Title:     defaultBarkTitle,
		},
	}
}

func normalize(cfg *AppConfig) {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)
	cfg.Paths.Logs = strings.TrimSpace(cfg.Paths.Logs)

	s := &cfg.Summarizer
	s.Provider = normalizeProvider(s.Provider)
	s.APIKey = strings.TrimSpace(s.APIKey)
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	s.Model = strings.TrimSpace(s.Model)
	if s.Model == "" && s.Provider == ProviderHuggingFace {
		s.Model = defaultHuggingFaceModel
	}

	f := &cfg.Fetch
	f.Mode = strings.ToLower(strings.TrimSpace(f.Mode))
	if f.Mode == "" {
		f.Mode = ExtractModeSelectors
	}
	if strings.TrimSpace(f.UserAgent) == "" {
		f.UserAgent = defaultFetchUserAgent
	}

	cfg.Translation.DictionaryPath = strings.TrimSpace(cfg.Translation.DictionaryPath)

	cfg.Database.DSN = strings.TrimSpace(cfg.Database.DSN)
	cfg.Database.Host = strings.TrimSpace(cfg.Database.Host)

	m := &cfg.Mongo
	m.URI = strings.TrimSpace(m.URI)
	if strings.TrimSpace(m.Database) == "" {
		m.Database = defaultMongoDatabase
	}
	if strings.TrimSpace(m.Collection) == "" {
		m.Collection = defaultMongoCollection
	}

	cfg.Redis.URL = strings.TrimSpace(cfg.Redis.URL)
	cfg.Bark.Key = strings.TrimSpace(cfg.Bark.Key)
	if strings.TrimSpace(cfg.Bark.ServerURL) == "" {
		cfg.Bark.ServerURL = defaultBarkServerURL
	}
}

// Validate rejects configurations the server cannot start with.
// A missing summarizer API key is not rejected here; requests fail closed instead.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	switch c.Summarizer.Provider {
	case ProviderHuggingFace, ProviderOpenAI, ProviderOpenAICompatible, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown summarizer provider %q", c.Summarizer.Provider)
	}
	if c.Summarizer.MinLength < 0 || c.Summarizer.MaxLength < 1 || c.Summarizer.MinLength > c.Summarizer.MaxLength {
		return fmt.Errorf("invalid summarizer length bounds %d..%d", c.Summarizer.MinLength, c.Summarizer.MaxLength)
	}
	if c.Summarizer.InputLimit < 1 {
		return fmt.Errorf("invalid summarizer.input_limit %d, expected >= 1", c.Summarizer.InputLimit)
	}
	switch c.Fetch.Mode {
	case ExtractModeSelectors, ExtractModeReadability:
	default:
		return fmt.Errorf("unknown fetch.mode %q", c.Fetch.Mode)
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
	}
	if err := validateDSN(c.Database.DSNValue()); err != nil {
		return err
	}
	if c.Redis.RateLimitPerSecond < 0 {
		return fmt.Errorf("invalid redis.rate_limit_per_second %d, expected >= 0", c.Redis.RateLimitPerSecond)
	}
	return nil
}

func normalizeProvider(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	switch t {
	case "":
		return defaultProvider
	case "hf", "hugging-face":
		return ProviderHuggingFace
	case "openaicompatible":
		return ProviderOpenAICompatible
	}
	return t
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
