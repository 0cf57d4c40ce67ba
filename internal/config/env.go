package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables, loading a local .env
// file first when present. Secrets (API key, redis password, session secret)
// normally arrive this way rather than through the JSON file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load(".env")

	setIfNotEmpty(&cfg.Backend, os.Getenv("WEALTHWISE_BACKEND"))
	setIfNotEmpty(&cfg.SQLitePath, os.Getenv("WEALTHWISE_SQLITE_PATH"))
	setIfNotEmpty(&cfg.RedisAddr, os.Getenv("WEALTHWISE_REDIS_ADDR"))
	setIfNotEmpty(&cfg.RedisUsername, os.Getenv("WEALTHWISE_REDIS_USERNAME"))
	setIfNotEmpty(&cfg.RedisPassword, os.Getenv("WEALTHWISE_REDIS_PASSWORD"))
	setIfNotEmpty(&cfg.PostgresDSN, os.Getenv("WEALTHWISE_POSTGRES_DSN"))
	setIfNotEmpty(&cfg.APIBaseURL, os.Getenv("WEALTHWISE_API_BASE_URL"))
	setIfNotEmpty(&cfg.APIKey, os.Getenv("ANTHROPIC_API_KEY"))
	setIfNotEmpty(&cfg.SessionSecret, os.Getenv("WEALTHWISE_SESSION_SECRET"))
}
