package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "APP_ENV", "LOG_DIR", "SUMMARIZER_PROVIDER", "SUMMARIZER_MODEL",
		"SUMMARIZER_ENDPOINT", "SUMMARIZER_API_KEY", "HUGGINGFACE_API_KEY",
		"TRANSLATION_DICTIONARY", "DATABASE_DSN", "MONGODB_URI", "MONGODB_DATABASE",
		"REDIS_URL", "BARK_KEY", "BARK_SERVER_URL",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenDefaultFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Port)
	assert.Equal(t, ProviderHuggingFace, cfg.Summarizer.Provider)
	assert.Equal(t, defaultHuggingFaceModel, cfg.Summarizer.Model)
	assert.Equal(t, 50, cfg.Summarizer.MinLength)
	assert.Equal(t, 200, cfg.Summarizer.MaxLength)
	assert.Equal(t, 1000, cfg.Summarizer.InputLimit)
	assert.Equal(t, "Blog Summarizer", cfg.Mongo.Database)
	assert.Equal(t, "full_texts", cfg.Mongo.Collection)
	assert.False(t, cfg.Database.Enabled())
	assert.False(t, cfg.Mongo.Enabled())
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.IsDev())
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
port: 8080
env: production
summarizer:
  provider: OpenAI
  api_key: sk-test
  model: gpt-4o-mini
  input_limit: 500
fetch:
  mode: readability
mongo:
  uri: mongodb://localhost:27017
redis:
  url: redis://localhost:6379/0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, ProviderOpenAI, cfg.Summarizer.Provider)
	assert.Equal(t, "sk-test", cfg.Summarizer.APIKey)
	assert.Equal(t, 500, cfg.Summarizer.InputLimit)
	assert.Equal(t, 200, cfg.Summarizer.MaxLength)
	assert.Equal(t, ExtractModeReadability, cfg.Fetch.Mode)
	assert.True(t, cfg.Mongo.Enabled())
	assert.Equal(t, "Blog Summarizer", cfg.Mongo.Database)
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "prot: 80\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"port":     "port: 70000\n",
		"provider": "summarizer:\n  provider: cohere\n",
		"bounds":   "summarizer:\n  min_length: 300\n  max_length: 200\n",
		"mode":     "fetch:\n  mode: regex\n",
		"dsn":      "database:\n  dsn: \"not a dsn\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HUGGINGFACE_API_KEY", "hf_key")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	path := writeConfig(t, "port: 8080\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "hf_key", cfg.Summarizer.APIKey)
	assert.Equal(t, "mongodb://db:27017", cfg.Mongo.URI)
}

func TestApplyEnv_HuggingFaceKeyOnlyForHuggingFace(t *testing.T) {
	env := map[string]string{
		"SUMMARIZER_PROVIDER": "anthropic",
		"HUGGINGFACE_API_KEY": "hf_key",
	}
	cfg := defaultAppConfig()
	applyEnv(&cfg, func(key string) string { return env[key] })

	assert.Equal(t, "anthropic", cfg.Summarizer.Provider)
	assert.Empty(t, cfg.Summarizer.APIKey)

	env["SUMMARIZER_API_KEY"] = "sk-ant"
	applyEnv(&cfg, func(key string) string { return env[key] })
	assert.Equal(t, "sk-ant", cfg.Summarizer.APIKey)
}

func TestDSNValue(t *testing.T) {
	assert.Empty(t, DatabaseRuntimeConfig{}.DSNValue())

	explicit := DatabaseRuntimeConfig{DSN: "u:p@tcp(db:3306)/blog"}
	assert.Equal(t, "u:p@tcp(db:3306)/blog", explicit.DSNValue())

	built := DatabaseRuntimeConfig{Host: "db", User: "root", Password: "pw", Name: "blog", ParseTime: true}
	dsn := built.DSNValue()
	assert.Contains(t, dsn, "root:pw@tcp(db:3306)/blog?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
	assert.NoError(t, validateDSN(dsn))
}

func TestNormalizeProvider(t *testing.T) {
	assert.Equal(t, ProviderHuggingFace, normalizeProvider(""))
	assert.Equal(t, ProviderHuggingFace, normalizeProvider("HF"))
	assert.Equal(t, ProviderOpenAICompatible, normalizeProvider("openai_compatible"))
	assert.Equal(t, ProviderAnthropic, normalizeProvider(" Anthropic "))
}
