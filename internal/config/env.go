package config

import (
	"os"
	"strconv"
)

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// ApplyEnvOverrides применяет переменные окружения поверх конфига (env переопределяет YAML)
func ApplyEnvOverrides(cfg *YamlConfig) {
	if v := getEnv("HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("HTTP_PORT", ""); v != "" {
		cfg.Port = getEnvInt("HTTP_PORT", cfg.Port)
	} else if v := getEnv("PORT", ""); v != "" {
		cfg.Port = getEnvInt("PORT", cfg.Port)
	}

	if v := getEnv("STORAGE", ""); v != "" {
		cfg.Storage = v
	}

	if v := getEnv("DB_HOST", ""); v != "" {
		cfg.Database.Host = v
	}
	if p := getEnvInt("DB_PORT", 0); p != 0 {
		cfg.Database.Port = p
	}
	if v := getEnv("DB_USER", ""); v != "" {
		cfg.Database.User = v
	}
	if v := getEnv("DB_PASSWORD", ""); v != "" {
		cfg.Database.Password = v
	}
	if v := getEnv("DB_DATABASE", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_NAME", ""); v != "" {
		cfg.Database.Name = v
	}
	if v := getEnv("DB_SSLMODE", ""); v != "" {
		cfg.Database.SSLMode = v
	}

	if p := getEnvInt("RATE_LIMIT_REQUESTS", 0); p > 0 {
		cfg.RateLimit.Requests = p
	}
	if p := getEnvInt("RATE_LIMIT_WINDOW_SEC", 0); p > 0 {
		cfg.RateLimit.WindowSec = p
	}

	if v := getEnv("LOG_LEVEL", ""); v != "" {
		cfg.Logging.Level = v
	}
	if v := getEnv("LOG_FORMAT", ""); v != "" {
		cfg.Logging.Format = v
	}

	if p := getEnvInt("MAX_BODY_BYTES", 0); p > 0 {
		cfg.MaxBodyBytes = int64(p)
	}
}

// LoadConfigFromEnv собирает конфиг только из переменных окружения (для работы без YAML)
func LoadConfigFromEnv() *YamlConfig {
	cfg := GetDefaultYamlConfig()
	ApplyEnvOverrides(cfg)
	return cfg
}
