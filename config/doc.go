// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A feed entry names its bundle source (path or URL), timezone and reference
// date; top-level sections configure the feed snapshot cache and logging.
// Multiple feeds may be declared and selected by name.
package config
