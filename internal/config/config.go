// Package config resolves runtime settings from defaults, environment
// variables (a .env file is loaded by main) and command-line flags.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"

	"github.com/fremyrosso/site/internal/analytics"
)

// Config keys. Each is bound to the environment variable listed in envKeys.
const (
	KeyPort              = "port"
	KeyMode              = "mode"
	KeyContent           = "content"
	KeyAssetDir          = "assets"
	KeyAnalyticsEnabled  = "analytics.enabled"
	KeyAnalyticsDSN      = "analytics.dsn"
	KeyAnalyticsSalt     = "analytics.salt"
	KeyAnalyticsRetain   = "analytics.retention"
	KeyAnalyticsInterval = "analytics.cleanup_interval"
)

var envKeys = map[string]string{
	KeyPort:              "PORT",
	KeyMode:              "GIN_MODE",
	KeyContent:           "SITE_CONTENT",
	KeyAssetDir:          "ASSET_DIR",
	KeyAnalyticsEnabled:  "ANALYTICS_ENABLED",
	KeyAnalyticsDSN:      "ANALYTICS_DSN",
	KeyAnalyticsSalt:     "ANALYTICS_SALT",
	KeyAnalyticsRetain:   "ANALYTICS_RETENTION",
	KeyAnalyticsInterval: "ANALYTICS_CLEANUP_INTERVAL",
}

type Analytics struct {
	Enabled         bool
	DSN             string
	Salt            string
	Retention       time.Duration
	CleanupInterval time.Duration
}

type Config struct {
	Port string
	// Mode is the gin mode: debug, release or test.
	Mode string
	// ContentPath is a YAML content file. Empty uses the built-in content.
	ContentPath string
	// AssetDir holds the static, images and videos directories.
	AssetDir  string
	Analytics Analytics
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// NewViper returns a viper instance with defaults and env bindings set.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPort, "8080")
	v.SetDefault(KeyMode, "release")
	v.SetDefault(KeyContent, "")
	v.SetDefault(KeyAssetDir, ".")
	v.SetDefault(KeyAnalyticsEnabled, true)
	v.SetDefault(KeyAnalyticsDSN, analytics.MemoryDSN)
	v.SetDefault(KeyAnalyticsSalt, "")
	v.SetDefault(KeyAnalyticsRetain, analytics.DefaultRetention)
	v.SetDefault(KeyAnalyticsInterval, 24*time.Hour)

	for key, env := range envKeys {
		// BindEnv only errors when given no key.
		_ = v.BindEnv(key, env)
	}
	return v
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:        v.GetString(KeyPort),
		Mode:        v.GetString(KeyMode),
		ContentPath: v.GetString(KeyContent),
		AssetDir:    v.GetString(KeyAssetDir),
		Analytics: Analytics{
			Enabled:         v.GetBool(KeyAnalyticsEnabled),
			DSN:             v.GetString(KeyAnalyticsDSN),
			Salt:            v.GetString(KeyAnalyticsSalt),
			Retention:       v.GetDuration(KeyAnalyticsRetain),
			CleanupInterval: v.GetDuration(KeyAnalyticsInterval),
		},
	}

	if n, err := strconv.Atoi(cfg.Port); err != nil || n <= 0 || n > 65535 {
		return nil, fmt.Errorf("invalid port %q", cfg.Port)
	}
	switch cfg.Mode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid mode %q: want debug, release or test", cfg.Mode)
	}
	if cfg.Analytics.Enabled && cfg.Analytics.Retention <= 0 {
		return nil, fmt.Errorf("invalid analytics retention %s", cfg.Analytics.Retention)
	}
	return cfg, nil
}
