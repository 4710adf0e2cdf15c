package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        int    `yaml:"port"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	DatabaseURL string `yaml:"database_url"`

	StatsBackend string `yaml:"stats_backend"`
	StatsFile    string `yaml:"stats_file"`
	RedisAddr    string `yaml:"redis_addr"`

	AudioEnabled bool    `yaml:"audio_enabled"`
	AudioVolume  float64 `yaml:"audio_volume"`
}

func Default() *Config {
	return &Config{
		Port:         8080,
		LogLevel:     "info",
		LogFormat:    "text",
		DatabaseURL:  "postgres://localhost:5432/cleannile?sslmode=disable",
		StatsBackend: "file",
		StatsFile:    defaultStatsFile(),
		RedisAddr:    "localhost:6379",
		AudioEnabled: false,
		AudioVolume:  1,
	}
}

// Load builds the configuration from defaults, the YAML file named by
// CONFIG_FILE if set, and environment variables, in that order.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnvInt("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.StatsBackend = getEnv("STATS_BACKEND", cfg.StatsBackend)
	cfg.StatsFile = getEnv("STATS_FILE", cfg.StatsFile)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.AudioEnabled = getEnvBool("AUDIO_ENABLED", cfg.AudioEnabled)
	cfg.AudioVolume = getEnvFloat("AUDIO_VOLUME", cfg.AudioVolume)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	// An empty document leaves the defaults in place.
	if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func defaultStatsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cleannile-stats.yaml"
	}
	return filepath.Join(dir, "cleannile", "stats.yaml")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
