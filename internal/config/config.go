// Package config loads curator configuration with layered precedence:
// built-in defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/moodcue/go-mood-curator/internal/curation"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"mood-curator.yaml",
	"mood-curator.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CONFIG_PATH"

// envPrefix namespaces the curator's environment variables. Nested keys use
// a double underscore, e.g. MOOD_CURATOR_TUNING__ARTIST_CAP=3.
const envPrefix = "MOOD_CURATOR_"

// Config is the full curator configuration.
type Config struct {
	Tuning   curation.Tuning `koanf:"tuning"`
	LogLevel string          `koanf:"log_level"` // debug, info, warn, error
}

// defaultConfig returns the built-in defaults: the recommended tuning
// constants and info-level logging.
func defaultConfig() Config {
	return Config{
		Tuning:   curation.DefaultTuning(),
		LogLevel: "info",
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, in increasing order of precedence.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// MOOD_CURATOR_LOG_LEVEL=debug -> log_level
	// MOOD_CURATOR_TUNING__RELEVANCE__AUDIO_MATCH=0.5 -> tuning.relevance.audio_match
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("loading environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	w := c.Tuning.Relevance
	for name, v := range map[string]float64{
		"relevance.audio_match": w.AudioMatch,
		"relevance.preference":  w.Preference,
		"relevance.popularity":  w.Popularity,
		"relevance.novelty":     w.Novelty,
	} {
		if v < 0 {
			return fmt.Errorf("tuning.%s must not be negative", name)
		}
	}

	d := c.Tuning.Diversity
	for name, v := range map[string]float64{
		"diversity.artist_weight": d.ArtistWeight,
		"diversity.tempo_weight":  d.TempoWeight,
		"diversity.energy_weight": d.EnergyWeight,
		"diversity.artist_scale":  d.ArtistScale,
		"diversity.tempo_scale":   d.TempoScale,
		"diversity.energy_scale":  d.EnergyScale,
	} {
		if v < 0 {
			return fmt.Errorf("tuning.%s must not be negative", name)
		}
	}

	if c.Tuning.ArtistCap < 1 {
		return fmt.Errorf("tuning.artist_cap must be at least 1")
	}

	return nil
}

// findConfigFile returns the first existing config file path, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
