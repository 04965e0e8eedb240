package config

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 3000
	defaultEnv        = "development"

	ProviderHuggingFace      = "huggingface"
	ProviderOpenAI           = "openai"
	ProviderOpenAICompatible = "openai-compatible"
	ProviderAnthropic        = "anthropic"

	ExtractModeSelectors   = "selectors"
	ExtractModeReadability = "readability"

	defaultProvider          = ProviderHuggingFace
	defaultHuggingFaceModel  = "sshleifer/distilbart-cnn-12-6"
	defaultSummaryMinLength  = 50
	defaultSummaryMaxLength  = 200
	defaultSummaryInputLimit = 1000

	defaultFetchUserAgent    = "Mozilla/5.0 (compatible; blog-summarizer/1.0)"
	defaultFetchMaxBodyBytes = 5 << 20

	defaultMongoDatabase   = "Blog Summarizer"
	defaultMongoCollection = "full_texts"
	defaultMongoTimeout    = 10

	defaultDBCharset = "utf8mb4"
	defaultDBLoc     = "Local"
	defaultDBPort    = 3306

	defaultSummaryCacheTTL = 24 * 60 * 60
	defaultRateLimit       = 10

	defaultBarkServerURL = "https://day.app"
	defaultBarkTitle     = "blog-summarizer"
)
