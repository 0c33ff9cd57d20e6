package config

// FeedConfig describes one GTFS bundle source. Exactly one of Path or URL is
// expected; Path wins when both are set.
type FeedConfig struct {
	Name          string `yaml:"name" validate:"required"`
	Path          string `yaml:"path"`
	URL           string `yaml:"url" validate:"omitempty,url"`
	Timezone      string `yaml:"timezone"`
	ReferenceDate string `yaml:"referenceDate" validate:"omitempty,datetime=2006-01-02"`
}

// CacheConfig contains feed snapshot cache configuration
type CacheConfig struct {
	Path string `yaml:"path"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Feed  FeedConfig   `yaml:"feed"`
	Feeds []FeedConfig `yaml:"feeds"`
	Cache CacheConfig  `yaml:"cache"`
	Log   LogConfig    `yaml:"log"`
}
