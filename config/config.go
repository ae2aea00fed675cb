package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Search modes: live scrapes the marketplace, demo serves fixed data.
const (
	ModeLive = "live"
	ModeDemo = "demo"
)

// Config holds all configuration for the application
type Config struct {
	Server      ServerConfig
	Marketplace MarketplaceConfig
	Search      SearchConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MarketplaceConfig holds marketplace scraping configuration
type MarketplaceConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	AffiliateTag string `mapstructure:"affiliate_tag"`
}

// SearchConfig holds per-run search configuration
type SearchConfig struct {
	Mode        string        `mapstructure:"mode"`
	ResultLimit int           `mapstructure:"result_limit"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/partscout/")

	// Environment variable settings
	v.SetEnvPrefix("PARTSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Marketplace defaults
	v.SetDefault("marketplace.base_url", "https://www.amazon.com.br")
	v.SetDefault("marketplace.affiliate_tag", "")

	// Search defaults
	v.SetDefault("search.mode", ModeLive)
	v.SetDefault("search.result_limit", 10)
	v.SetDefault("search.cache_ttl", "30m")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.Mode != ModeLive && config.Search.Mode != ModeDemo {
		return fmt.Errorf("search mode must be %q or %q, got: %s", ModeLive, ModeDemo, config.Search.Mode)
	}

	if config.Search.ResultLimit < 1 || config.Search.ResultLimit > 20 {
		return fmt.Errorf("search result limit must be between 1 and 20, got: %d", config.Search.ResultLimit)
	}

	if !strings.HasPrefix(config.Marketplace.BaseURL, "http://") &&
		!strings.HasPrefix(config.Marketplace.BaseURL, "https://") {
		return fmt.Errorf("marketplace base URL must be absolute, got: %s", config.Marketplace.BaseURL)
	}

	return nil
}
