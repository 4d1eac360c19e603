// Package config provides Viper-based hierarchical configuration management
// for the document-understanding pipeline: defaults, then an optional YAML
// file, then environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model           string `mapstructure:"model" yaml:"model"`
		FallbackModel   string `mapstructure:"fallback_model" yaml:"fallback_model"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxRetries      int    `mapstructure:"max_retries" yaml:"max_retries"`
		FallbackRetries int    `mapstructure:"fallback_retries" yaml:"fallback_retries"`
		RetryBaseDelay  int    `mapstructure:"retry_base_delay_ms" yaml:"retry_base_delay_ms"`
		APIKey          string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Extraction struct {
		QualityThreshold float64 `mapstructure:"quality_threshold" yaml:"quality_threshold"`
	} `mapstructure:"extraction" yaml:"extraction"`

	Enrichment struct {
		MerchantConfidenceThreshold float64 `mapstructure:"merchant_confidence_threshold" yaml:"merchant_confidence_threshold"`
		CategoryConfidenceThreshold float64 `mapstructure:"category_confidence_threshold" yaml:"category_confidence_threshold"`
		BatchSize                   int     `mapstructure:"batch_size" yaml:"batch_size"`
		DefaultCurrency             string  `mapstructure:"default_currency" yaml:"default_currency"`
	} `mapstructure:"enrichment" yaml:"enrichment"`

	Taxonomy struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"taxonomy" yaml:"taxonomy"`
}

// AITimeout returns the model-call timeout as a duration.
func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

// RetryBaseDelay returns the linear-backoff base delay as a duration.
func (c *Config) RetryBaseDelay() time.Duration {
	return time.Duration(c.AI.RetryBaseDelay) * time.Millisecond
}

// HasCredential reports whether a model credential is configured.
// Enrichment treats a missing credential as a silent no-op; extraction
// treats it as a fatal configuration condition.
func (c *Config) HasCredential() bool {
	return c.AI.APIKey != ""
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.docai")
	v.AddConfigPath(".docai")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("DOCAI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. The API key always comes from the unprefixed env var
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// AI defaults
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.fallback_model", "gemini-2.5-pro")
	v.SetDefault("ai.timeout_seconds", 60)
	v.SetDefault("ai.max_retries", 2)
	v.SetDefault("ai.fallback_retries", 1)
	v.SetDefault("ai.retry_base_delay_ms", 2000)

	// Extraction defaults
	v.SetDefault("extraction.quality_threshold", 0.7)

	// Enrichment defaults
	v.SetDefault("enrichment.merchant_confidence_threshold", 0.6)
	v.SetDefault("enrichment.category_confidence_threshold", 0.7)
	v.SetDefault("enrichment.batch_size", 50)
	v.SetDefault("enrichment.default_currency", "EUR")

	// Taxonomy defaults
	v.SetDefault("taxonomy.file", "")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.Model == "" {
		return fmt.Errorf("ai.model must not be empty")
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	if config.AI.MaxRetries < 0 || config.AI.MaxRetries > 10 {
		return fmt.Errorf("ai.max_retries must be between 0 and 10, got: %d", config.AI.MaxRetries)
	}

	if config.AI.FallbackRetries < 0 || config.AI.FallbackRetries > 10 {
		return fmt.Errorf("ai.fallback_retries must be between 0 and 10, got: %d", config.AI.FallbackRetries)
	}

	if config.AI.RetryBaseDelay < 0 {
		return fmt.Errorf("ai.retry_base_delay_ms must not be negative, got: %d", config.AI.RetryBaseDelay)
	}

	if config.Extraction.QualityThreshold < 0.0 || config.Extraction.QualityThreshold > 1.0 {
		return fmt.Errorf("extraction.quality_threshold must be between 0.0 and 1.0, got: %f", config.Extraction.QualityThreshold)
	}

	if config.Enrichment.MerchantConfidenceThreshold < 0.0 || config.Enrichment.MerchantConfidenceThreshold > 1.0 {
		return fmt.Errorf("enrichment.merchant_confidence_threshold must be between 0.0 and 1.0, got: %f", config.Enrichment.MerchantConfidenceThreshold)
	}

	if config.Enrichment.CategoryConfidenceThreshold < 0.0 || config.Enrichment.CategoryConfidenceThreshold > 1.0 {
		return fmt.Errorf("enrichment.category_confidence_threshold must be between 0.0 and 1.0, got: %f", config.Enrichment.CategoryConfidenceThreshold)
	}

	if config.Enrichment.BatchSize < 1 || config.Enrichment.BatchSize > 50 {
		return fmt.Errorf("enrichment.batch_size must be between 1 and 50, got: %d", config.Enrichment.BatchSize)
	}

	if len(config.Enrichment.DefaultCurrency) != 3 {
		return fmt.Errorf("enrichment.default_currency must be a 3-letter ISO code, got: %s", config.Enrichment.DefaultCurrency)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
