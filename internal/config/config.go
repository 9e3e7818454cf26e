package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Placeholder values keep the process startable with no remote store configured.
// Every remote call then fails and the fixture fallback keeps screens populated.
const (
	PlaceholderURL = "https://placeholder.supabase.co"
	PlaceholderKey = "placeholder-key"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Remote store (hosted table API + auth)
	SupabaseURL     string `mapstructure:"SUPABASE_URL"`
	SupabaseAnonKey string `mapstructure:"SUPABASE_ANON_KEY"`
	RemoteTimeoutMS int    `mapstructure:"REMOTE_TIMEOUT_MS"`

	// Session store
	AuthInitTimeoutMS int `mapstructure:"AUTH_INIT_TIMEOUT_MS"`

	// Toast projection
	ToastFreshnessMS int `mapstructure:"TOAST_FRESHNESS_MS"`
	ToastDurationMS  int `mapstructure:"TOAST_DURATION_MS"`

	// Offline demo login — empty hash disables it
	DemoEmail        string `mapstructure:"DEMO_EMAIL"`
	DemoPasswordHash string `mapstructure:"DEMO_PASSWORD_HASH"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SUPABASE_URL", PlaceholderURL)
	viper.SetDefault("SUPABASE_ANON_KEY", PlaceholderKey)
	viper.SetDefault("REMOTE_TIMEOUT_MS", 10000)
	viper.SetDefault("AUTH_INIT_TIMEOUT_MS", 3000)
	viper.SetDefault("TOAST_FRESHNESS_MS", 1000)
	viper.SetDefault("TOAST_DURATION_MS", 5000)
	viper.SetDefault("DEMO_EMAIL", "demo@nexus.com")
	viper.SetDefault("DEMO_PASSWORD_HASH", "")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsOffline reports whether the remote store is unconfigured and the process
// runs in degraded mode on fixtures only.
func (c *Config) IsOffline() bool {
	return c.SupabaseURL == "" || c.SupabaseAnonKey == "" ||
		strings.Contains(c.SupabaseURL, "placeholder") || c.SupabaseAnonKey == PlaceholderKey
}

func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutMS) * time.Millisecond
}

func (c *Config) AuthInitTimeout() time.Duration {
	return time.Duration(c.AuthInitTimeoutMS) * time.Millisecond
}

func (c *Config) ToastFreshness() time.Duration {
	return time.Duration(c.ToastFreshnessMS) * time.Millisecond
}

func (c *Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastDurationMS) * time.Millisecond
}
