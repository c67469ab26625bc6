// Package config loads skillhub settings from defaults, an optional YAML
// file and SKILLHUB_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultAPIBase is the public skills API.
const DefaultAPIBase = "https://skills-api.bytarch.dpdns.org"

// Config holds every tunable of the client and both surfaces.
type Config struct {
	APIBase        string        `koanf:"api_base"`
	RequestTimeout time.Duration `koanf:"request_timeout"` // 0 = no timeout
	Listen         string        `koanf:"listen"`
	LogFile        string        `koanf:"log_file"`
	LogLevel       string        `koanf:"log_level"`
	Debounce       time.Duration `koanf:"debounce"`
	ToastDuration  time.Duration `koanf:"toast_duration"`
	CopyFeedback   time.Duration `koanf:"copy_feedback"`
	SearchLimit    int           `koanf:"search_limit"`
	FeaturedLimit  int           `koanf:"featured_limit"`
	AllowedOrigins []string      `koanf:"allowed_origins"` // CORS; empty allows any
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIBase:       DefaultAPIBase,
		Listen:        ":8080",
		LogFile:       "skillhub.log",
		LogLevel:      "info",
		Debounce:      300 * time.Millisecond,
		ToastDuration: 3 * time.Second,
		CopyFeedback:  2 * time.Second,
		SearchLimit:   10,
		FeaturedLimit: 8,
	}
}

// Load reads path (if it exists) and overlays SKILLHUB_* variables.
// A .env file in the working directory is loaded first, best effort.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() //nolint:errcheck // .env is optional

	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue("SKILLHUB_", ".", envValue), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.APIBase = strings.TrimRight(cfg.APIBase, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// listKeys are the keys whose environment value is a comma-separated list.
var listKeys = map[string]bool{"allowed_origins": true}

// envValue maps SKILLHUB_FOO_BAR to foo_bar and splits list values.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, "SKILLHUB_"))
	if !listKeys[key] {
		return key, value
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return key, items
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return errors.New("api_base is required")
	}
	u, err := url.Parse(c.APIBase)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid api_base %q: must be an absolute URL", c.APIBase)
	}
	if c.RequestTimeout < 0 {
		return errors.New("request_timeout must be non-negative")
	}
	if c.Debounce <= 0 || c.ToastDuration <= 0 || c.CopyFeedback <= 0 {
		return errors.New("debounce, toast_duration and copy_feedback must be positive")
	}
	if c.SearchLimit <= 0 {
		return errors.New("search_limit must be positive")
	}
	if c.FeaturedLimit <= 0 {
		return errors.New("featured_limit must be positive")
	}
	return nil
}
