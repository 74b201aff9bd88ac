// Package config provides configuration management for the layerline CLI.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the layerline CLI configuration.
// Use mapstructure tags for Viper unmarshaling.
type Config struct {
	Region         string      `mapstructure:"region"`
	S3Endpoint     string      `mapstructure:"s3_endpoint"`
	LambdaEndpoint string      `mapstructure:"lambda_endpoint"`
	MetadataKey    string      `mapstructure:"metadata_key"`
	Retry          RetryConfig `mapstructure:"retry"`
}

// RetryConfig holds the retry policy applied around function creation.
type RetryConfig struct {
	Attempts uint64        `mapstructure:"attempts"`
	Interval time.Duration `mapstructure:"interval"`
}

// Load reads configuration from the config file (if present), the
// environment, and defaults, in ascending precedence below flags.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("LAYERLINE")
	v.AutomaticEnv()
	// the env names established by IaC pipelines keep working
	_ = v.BindEnv("region", "LAYERLINE_REGION", "AWS_DEFAULT_REGION")
	_ = v.BindEnv("s3_endpoint", "LAYERLINE_S3_ENDPOINT", "S3_URL")
	_ = v.BindEnv("lambda_endpoint", "LAYERLINE_LAMBDA_ENDPOINT", "LAMBDA_URL")

	v.SetDefault("metadata_key", "sha256")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
