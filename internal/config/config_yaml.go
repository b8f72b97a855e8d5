package config

import (
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

// YamlConfig представляет конфигурацию приложения из YAML
type YamlConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// Storage: memory (по умолчанию) или postgres
	Storage string `yaml:"storage"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`

	RateLimit struct {
		Requests  int `yaml:"requests"`
		WindowSec int `yaml:"window_sec"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`

	// MaxBodyBytes — лимит тела запроса для /api/v1 (защита от OOM)
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// LoadYamlConfig загружает конфигурацию из YAML файла
func LoadYamlConfig(path string) (*YamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg YamlConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetDefaultYamlConfig возвращает конфигурацию по умолчанию.
// Контракт контейнера: слушаем 0.0.0.0:8001.
func GetDefaultYamlConfig() *YamlConfig {
	cfg := &YamlConfig{
		Host:    "0.0.0.0",
		Port:    8001,
		Storage: "memory",
	}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "postgres"
	cfg.Database.Password = "postgres"
	cfg.Database.Name = "shop_api"
	cfg.Database.SSLMode = "disable"
	cfg.RateLimit.Requests = 5
	cfg.RateLimit.WindowSec = 1
	cfg.Logging.Level = "info"
	cfg.Logging.Format = "json"
	cfg.MaxBodyBytes = 1 << 20
	return cfg
}

// DSN возвращает connection string для lib/pq
func (c *YamlConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host, c.Database.Port, c.Database.User, c.Database.Password, c.Database.Name, c.Database.SSLMode)
}

// DatabaseURL возвращает postgres URL для golang-migrate
func (c *YamlConfig) DatabaseURL() string {
	pass := url.QueryEscape(c.Database.Password)
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User, pass, c.Database.Host, c.Database.Port, c.Database.Name, c.Database.SSLMode)
}

// Addr возвращает адрес HTTP-листенера
func (c *YamlConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
