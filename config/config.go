package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Dataset   DatasetConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DatasetConfig locates the reference ingredient dataset
type DatasetConfig struct {
	Path string `mapstructure:"path"`
}

// MatchingConfig holds resolver threshold overrides. Zero values fall back
// to the resolver's built-in constants.
type MatchingConfig struct {
	FuzzyThreshold     float64 `mapstructure:"fuzzy_threshold"`
	TFIDFThreshold     float64 `mapstructure:"tfidf_threshold"`
	PartialThreshold   float64 `mapstructure:"partial_threshold"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds resolver cache configuration
type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nutriscan/")

	v.SetEnvPrefix("NUTRISCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults carry a bare install
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("dataset.path", "data/food_ingredients.csv")

	v.SetDefault("matching.fuzzy_threshold", 0.80)
	v.SetDefault("matching.tfidf_threshold", 0.50)
	v.SetDefault("matching.partial_threshold", 0.60)
	v.SetDefault("matching.enable_debug_logging", false)

	v.SetDefault("cache.capacity", 1000)

	v.SetDefault("ratelimit.per_ip", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Dataset.Path == "" {
		return fmt.Errorf("dataset path is required (set NUTRISCAN_DATASET_PATH)")
	}

	for name, threshold := range map[string]float64{
		"fuzzy_threshold":   config.Matching.FuzzyThreshold,
		"tfidf_threshold":   config.Matching.TFIDFThreshold,
		"partial_threshold": config.Matching.PartialThreshold,
	} {
		if threshold <= 0 || threshold > 1 {
			return fmt.Errorf("matching.%s must be in (0, 1], got: %v", name, threshold)
		}
	}

	if config.Cache.Capacity <= 0 {
		return fmt.Errorf("cache capacity must be positive, got: %d", config.Cache.Capacity)
	}

	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}

	return nil
}
