package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv loads the given files in order. Variables already present in the
// process environment are never overwritten, and missing files are ignored.
func loadDotEnv(files ...string) {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		_ = godotenv.Load(file)
	}
}

func applyEnv(cfg *AppConfig, getenv func(string) string) {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	num("PORT", &cfg.Port)
	str("APP_ENV", &cfg.Env)
	str("LOG_DIR", &cfg.Paths.Logs)

	str("SUMMARIZER_PROVIDER", &cfg.Summarizer.Provider)
	str("SUMMARIZER_MODEL", &cfg.Summarizer.Model)
	str("SUMMARIZER_ENDPOINT", &cfg.Summarizer.Endpoint)
	str("SUMMARIZER_API_KEY", &cfg.Summarizer.APIKey)
	if cfg.Summarizer.APIKey == "" && normalizeProvider(cfg.Summarizer.Provider) == ProviderHuggingFace {
		str("HUGGINGFACE_API_KEY", &cfg.Summarizer.APIKey)
	}

	str("TRANSLATION_DICTIONARY", &cfg.Translation.DictionaryPath)
	str("DATABASE_DSN", &cfg.Database.DSN)
	str("MONGODB_URI", &cfg.Mongo.URI)
	str("MONGODB_DATABASE", &cfg.Mongo.Database)
	str("REDIS_URL", &cfg.Redis.URL)
	str("BARK_KEY", &cfg.Bark.Key)
	str("BARK_SERVER_URL", &cfg.Bark.ServerURL)
}
