// Package config loads application configuration and sets up logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// metersPerMile converts the configured radius to the upstream's unit.
const metersPerMile = 1609

// Config holds the full application configuration.
type Config struct {
	Google   GoogleConfig   `yaml:"google" mapstructure:"google"`
	Search   SearchConfig   `yaml:"search" mapstructure:"search"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Tiers    TiersConfig    `yaml:"tiers" mapstructure:"tiers"`
	Mail     MailConfig     `yaml:"mail" mapstructure:"mail"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// GoogleConfig holds the Maps API credentials.
type GoogleConfig struct {
	APIKey    string  `yaml:"api_key" mapstructure:"api_key"`
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// SearchConfig holds the settings-derived search defaults. DefaultLocation
// and DefaultIndustry are UI hints only, never enforced.
type SearchConfig struct {
	RadiusMiles     int    `yaml:"radius_miles" mapstructure:"radius_miles"`
	DefaultLocation string `yaml:"default_location" mapstructure:"default_location"`
	DefaultIndustry string `yaml:"default_industry" mapstructure:"default_industry"`
}

// RadiusMeters converts the configured radius to meters.
func (s SearchConfig) RadiusMeters() int {
	return s.RadiusMiles * metersPerMile
}

// PipelineConfig bounds the enrichment fan-out.
type PipelineConfig struct {
	Workers          int `yaml:"workers" mapstructure:"workers"`
	TimeoutSecs      int `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	FetchTimeoutSecs int `yaml:"fetch_timeout_secs" mapstructure:"fetch_timeout_secs"`
}

// TiersConfig holds the per-tier result caps. Zero means unlimited.
type TiersConfig struct {
	PublicCap     int `yaml:"public_cap" mapstructure:"public_cap"`
	RegisteredCap int `yaml:"registered_cap" mapstructure:"registered_cap"`
}

// MailConfig configures the SES mail boundary. An empty Region disables mail
// sending.
type MailConfig struct {
	Region string `yaml:"region" mapstructure:"region"`
	Sender string `yaml:"sender" mapstructure:"sender"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LOCALLEADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Every key gets one so AutomaticEnv can override it.
	v.SetDefault("google.api_key", "")
	v.SetDefault("google.rate_limit", 10.0)
	v.SetDefault("search.default_location", "")
	v.SetDefault("search.default_industry", "")
	v.SetDefault("search.radius_miles", 10)
	v.SetDefault("pipeline.workers", 5)
	v.SetDefault("pipeline.timeout_secs", 60)
	v.SetDefault("pipeline.fetch_timeout_secs", 10)
	v.SetDefault("tiers.public_cap", 5)
	v.SetDefault("tiers.registered_cap", 7)
	v.SetDefault("mail.region", "")
	v.SetDefault("mail.sender", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
