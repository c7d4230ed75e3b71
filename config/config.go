package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Availability specifics
	GoogleCalendar GoogleCalendarConfig
	Pricing        PricingConfig
	Resolver       ResolverConfig
	RateLimit      RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
	CacheTTL        time.Duration
	FetchTimeout    time.Duration
}

type PricingConfig struct {
	File     string
	Currency string
}

type ResolverConfig struct {
	Timezone       string
	LookaheadWeeks int
}

type RateLimitConfig struct {
	PerMin int
	Burst  int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Split origins since viper might not parse array seamlessly from env
	var origins []string
	if raw := viper.GetString("http_server.allowed_origins"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.HTTPServer.AllowedOrigins = origins

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.CacheTTL = viper.GetDuration("google_calendar.cache_ttl")
	cfg.GoogleCalendar.FetchTimeout = viper.GetDuration("google_calendar.fetch_timeout")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if calendarID := viper.GetString("google_calendar_id"); calendarID != "" {
		cfg.GoogleCalendar.CalendarID = calendarID
	}

	cfg.Pricing.File = viper.GetString("pricing.file")
	cfg.Pricing.Currency = viper.GetString("pricing.currency")
	if pricesFile := viper.GetString("pricing_file"); pricesFile != "" {
		cfg.Pricing.File = pricesFile
	}

	cfg.Resolver.Timezone = viper.GetString("resolver.timezone")
	cfg.Resolver.LookaheadWeeks = viper.GetInt("resolver.lookahead_weeks")

	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.GoogleCalendar.CalendarID == "" {
		return nil, fmt.Errorf("google_calendar.calendar_id is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("google_calendar.cache_ttl", "5m")
	viper.SetDefault("google_calendar.fetch_timeout", "10s")
	viper.SetDefault("pricing.file", "./config/prices.yaml")
	viper.SetDefault("pricing.currency", "EUR")
	viper.SetDefault("resolver.timezone", "UTC")
	viper.SetDefault("resolver.lookahead_weeks", 8)
	viper.SetDefault("rate_limit.per_min", 60)
	viper.SetDefault("rate_limit.burst", 60)
}
