package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Tuning.ArtistCap != 2 {
		t.Errorf("ArtistCap = %d, want 2", cfg.Tuning.ArtistCap)
	}
	if cfg.Tuning.Relevance.AudioMatch != 0.40 {
		t.Errorf("Relevance.AudioMatch = %v, want 0.40", cfg.Tuning.Relevance.AudioMatch)
	}
	if cfg.Tuning.Diversity.ArtistScale != 150 {
		t.Errorf("Diversity.ArtistScale = %v, want 150", cfg.Tuning.Diversity.ArtistScale)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte("log_level: debug\ntuning:\n  artist_cap: 3\n")
	if err := os.WriteFile(filepath.Join(dir, "mood-curator.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q from file", cfg.LogLevel, "debug")
	}
	if cfg.Tuning.ArtistCap != 3 {
		t.Errorf("ArtistCap = %d, want 3 from file", cfg.Tuning.ArtistCap)
	}
	// Values the file doesn't set keep their defaults.
	if cfg.Tuning.Relevance.Preference != 0.30 {
		t.Errorf("Relevance.Preference = %v, want default 0.30", cfg.Tuning.Relevance.Preference)
	}
}

func TestLoadConfigPathEnvVar(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q from CONFIG_PATH file", cfg.LogLevel, "warn")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	content := []byte("log_level: debug\ntuning:\n  artist_cap: 3\n")
	if err := os.WriteFile(filepath.Join(dir, "mood-curator.yaml"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MOOD_CURATOR_LOG_LEVEL", "error")
	t.Setenv("MOOD_CURATOR_TUNING__ARTIST_CAP", "4")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want %q from env", cfg.LogLevel, "error")
	}
	if cfg.Tuning.ArtistCap != 4 {
		t.Errorf("ArtistCap = %d, want 4 from env", cfg.Tuning.ArtistCap)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		wants string
	}{
		{
			name:  "unknown log level",
			env:   map[string]string{"MOOD_CURATOR_LOG_LEVEL": "verbose"},
			wants: "log_level",
		},
		{
			name:  "negative weight",
			env:   map[string]string{"MOOD_CURATOR_TUNING__RELEVANCE__AUDIO_MATCH": "-0.1"},
			wants: "must not be negative",
		},
		{
			name:  "zero artist cap",
			env:   map[string]string{"MOOD_CURATOR_TUNING__ARTIST_CAP": "0"},
			wants: "artist_cap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatal("Load accepted invalid configuration")
			}
			if !strings.Contains(err.Error(), tt.wants) {
				t.Errorf("error %q does not mention %q", err, tt.wants)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}

	cfg.Tuning.Diversity.EnergyScale = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative scale passed validation")
	}
}
