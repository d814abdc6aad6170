package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type TLSConfig struct {
	Cert string `yaml:"cert"`
	Key  string `yaml:"key"`
	CA   string `yaml:"ca"`
}

type RedashConfig struct {
	BaseURI        string     `yaml:"baseUri"`
	Email          string     `yaml:"email"`
	Password       string     `yaml:"password"`
	TimeoutSeconds int        `yaml:"timeoutSeconds"`
	TLS            *TLSConfig `yaml:"tls"`
}

func (c RedashConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type GroupsConfig struct {
	Default           string   `yaml:"default"`
	Excluded          []string `yaml:"excluded"`
	FullCatalogOwners []string `yaml:"fullCatalogOwners"`
}

type Config struct {
	Port        string       `yaml:"port"`
	DatabaseURL string       `yaml:"databaseUrl"`
	Redash      RedashConfig `yaml:"redash"`
	Groups      GroupsConfig `yaml:"groups"`
}

// Load reads the optional YAML registry file and applies environment
// overrides on top, so a container can run from env vars alone.
func Load(path string) (Config, error) {
	cfg := Config{Port: "8080"}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if cfg.Redash.BaseURI == "" {
		return Config{}, fmt.Errorf("redash baseUri is required")
	}
	if cfg.Redash.Email == "" || cfg.Redash.Password == "" {
		return Config{}, fmt.Errorf("redash credentials are required")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.Redash.BaseURI = getEnv("REDASH_BASE_URI", cfg.Redash.BaseURI)
	cfg.Redash.Email = getEnv("REDASH_EMAIL", cfg.Redash.Email)
	cfg.Redash.Password = getEnv("REDASH_PASSWORD", cfg.Redash.Password)
	cfg.Redash.TimeoutSeconds = getIntEnv("REDASH_TIMEOUT_SECONDS", cfg.Redash.TimeoutSeconds)

	cert := os.Getenv("REDASH_TLS_CERT")
	key := os.Getenv("REDASH_TLS_KEY")
	if cert != "" && key != "" {
		cfg.Redash.TLS = &TLSConfig{
			Cert: cert,
			Key:  key,
			CA:   os.Getenv("REDASH_TLS_CA"),
		}
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getIntEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
