package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. An explicit path takes precedence over the default locations.
func LoadAppConfig(path string) error {
	paths := []string{"config.yml", "config.yaml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	// the top-level feed is optional; if present validate it, same for each
	// entry of the feeds list
	if cfg.Feed.Name != "" || cfg.Feed.Path != "" || cfg.Feed.URL != "" {
		if err := v.Struct(cfg.Feed); err != nil {
			return err
		}
	}
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return err
		}
	}
	if cfg.Log.Level != "" {
		if err := v.Struct(cfg.Log); err != nil {
			return err
		}
	}
	Config = cfg
	return nil
}

// SelectFeed chooses a feed by name; fallback to first; if none, use the
// top-level feed.
func SelectFeed(name string) (FeedConfig, error) {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f, nil
			}
		}
		return FeedConfig{}, fmt.Errorf("no feed named %q in configuration", name)
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0], nil
	}
	return Config.Feed, nil
}

// Location resolves the feed's timezone, defaulting to UTC.
func (f FeedConfig) Location() (*time.Location, error) {
	if f.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", f.Name, err)
	}
	return loc, nil
}

// Reference resolves the feed's reference date in its timezone. A blank
// referenceDate means today.
func (f FeedConfig) Reference() (time.Time, error) {
	loc, err := f.Location()
	if err != nil {
		return time.Time{}, err
	}
	if f.ReferenceDate == "" {
		return time.Now().In(loc), nil
	}
	ref, err := time.ParseInLocation("2006-01-02", f.ReferenceDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("feed %s: %w", f.Name, err)
	}
	return ref, nil
}
