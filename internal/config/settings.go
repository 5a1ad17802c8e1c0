package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/handiism/tvdb-fanart/internal/logging"
	"github.com/handiism/tvdb-fanart/internal/model"
	"github.com/handiism/tvdb-fanart/internal/tvdb"
	"gopkg.in/yaml.v3"
)

// Settings holds all configuration options.
type Settings struct {
	// TheTVDB settings
	BaseURL  string `yaml:"base_url"`
	APIKey   string `yaml:"api_key"`
	Language string `yaml:"language"`

	// Loading settings
	MaxConcurrentLoads int     `yaml:"max_concurrent_loads"`
	MaxRetries         int     `yaml:"max_retries"`
	RetryCooldown      float64 `yaml:"retry_cooldown"`
	RetryExponent      float64 `yaml:"retry_exponent"`
	RequestsPerSecond  float64 `yaml:"requests_per_second"`
	LoadThumbs         bool    `yaml:"load_thumbs"`
	LoadVignettes      bool    `yaml:"load_vignettes"`

	// Saving settings
	OutputPath   string `yaml:"output_path"`
	SaveImages   bool   `yaml:"save_images"`
	ResizeOnSave bool   `yaml:"resize_on_save"`
	SaveMaxSize  int    `yaml:"save_max_size"`
	JPEGQuality  int    `yaml:"jpeg_quality"`

	Logging logging.Config `yaml:"logging"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		BaseURL:  tvdb.DefaultBaseURL,
		Language: "en",

		MaxConcurrentLoads: 4,
		MaxRetries:         3,
		RetryCooldown:      0.5,
		RetryExponent:      2.0,
		RequestsPerSecond:  5,
		LoadThumbs:         true,
		LoadVignettes:      false,

		OutputPath:   filepath.Join(homeDir, "Pictures", "TVDB"),
		SaveImages:   false,
		ResizeOnSave: false,
		SaveMaxSize:  1000,
		JPEGQuality:  90,

		Logging: logging.DefaultConfig(),
	}
}

// Load reads settings from a YAML file and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, settings); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	settings.loadFromEnv()

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return settings, nil
}

func (s *Settings) loadFromEnv() {
	if v := os.Getenv("TVDB_API_KEY"); v != "" {
		s.APIKey = v
	}
	if v := os.Getenv("TVDB_BASE_URL"); v != "" {
		s.BaseURL = v
	}
	if v := os.Getenv("TVDB_LANGUAGE"); v != "" {
		s.Language = v
	}
	if v := os.Getenv("TVDB_OUTPUT"); v != "" {
		s.OutputPath = v
	}
	if v := os.Getenv("TVDB_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
}

// Validate checks the settings for values that cannot work.
func (s *Settings) Validate() error {
	if s.MaxConcurrentLoads < 1 {
		return fmt.Errorf("max_concurrent_loads must be at least 1, got %d", s.MaxConcurrentLoads)
	}
	if s.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", s.MaxRetries)
	}
	if s.RetryCooldown < 0 || s.RetryExponent < 1 {
		return fmt.Errorf("invalid retry backoff: cooldown=%v exponent=%v", s.RetryCooldown, s.RetryExponent)
	}
	if s.Language != "" && !knownLanguage(s.Language) {
		return fmt.Errorf("unknown language %q", s.Language)
	}
	if s.Logging.Level != "" && !logging.ValidLevel(s.Logging.Level) {
		return fmt.Errorf("invalid log level %q", s.Logging.Level)
	}
	if s.Logging.Format != "" && !logging.ValidFormat(s.Logging.Format) {
		return fmt.Errorf("invalid log format %q", s.Logging.Format)
	}
	return nil
}

func knownLanguage(abbr string) bool {
	abbr = strings.ToLower(strings.TrimSpace(abbr))
	for _, l := range model.Languages() {
		if l.Abbreviation == abbr {
			return true
		}
	}
	return false
}

// Save writes settings to a YAML file.
func (s *Settings) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Links returns the link builder for the configured server and key.
func (s *Settings) Links() *tvdb.Links {
	return tvdb.NewLinks(s.BaseURL, s.APIKey)
}
