package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/wealthwise/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds. Zero values leave the corresponding Config field alone,
// so a partial file only overrides what it names.
type JsonConfig struct {
	Backend           string `json:"backend"`
	SQLitePath        string `json:"sqlite_path"`
	RedisAddr         string `json:"redis_addr"`
	RedisUsername     string `json:"redis_username"`
	RedisPassword     string `json:"redis_password"`
	PostgresDSN       string `json:"postgres_dsn"`
	APIBaseURL        string `json:"api_base_url"`
	APIKey            string `json:"api_key"`
	APITimeoutSeconds int    `json:"api_timeout_seconds"`
	SessionSecret     string `json:"session_secret"`
	SessionTTLHours   int    `json:"session_ttl_hours"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flag. No flag, no JSON. Read or unmarshal failures panic; the
// file was explicitly requested, so silently ignoring it would be worse.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFromArgs()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.Backend, jc.Backend)
	setIfNotEmpty(&cfg.SQLitePath, jc.SQLitePath)
	setIfNotEmpty(&cfg.RedisAddr, jc.RedisAddr)
	setIfNotEmpty(&cfg.RedisUsername, jc.RedisUsername)
	setIfNotEmpty(&cfg.RedisPassword, jc.RedisPassword)
	setIfNotEmpty(&cfg.PostgresDSN, jc.PostgresDSN)
	setIfNotEmpty(&cfg.APIBaseURL, jc.APIBaseURL)
	setIfNotEmpty(&cfg.APIKey, jc.APIKey)
	setIfNotEmpty(&cfg.SessionSecret, jc.SessionSecret)
	if jc.APITimeoutSeconds > 0 {
		cfg.APITimeout = time.Duration(jc.APITimeoutSeconds) * time.Second
	}
	if jc.SessionTTLHours > 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTLHours) * time.Hour
	}
}

func setIfNotEmpty(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
