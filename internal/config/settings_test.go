package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.MaxConcurrentLoads != DefaultSettings().MaxConcurrentLoads {
		t.Errorf("MaxConcurrentLoads = %d", settings.MaxConcurrentLoads)
	}
	if !settings.LoadThumbs {
		t.Error("LoadThumbs should default to true")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api_key: from-file
language: de
max_concurrent_loads: 2
load_vignettes: true
logging:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TVDB_API_KEY", "from-env")
	t.Setenv("TVDB_OUTPUT", "/tmp/art")
	t.Setenv("TVDB_LANGUAGE", "")

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.APIKey != "from-env" {
		t.Errorf("APIKey = %q, want env override", settings.APIKey)
	}
	if settings.Language != "de" {
		t.Errorf("Language = %q, want de", settings.Language)
	}
	if settings.OutputPath != "/tmp/art" {
		t.Errorf("OutputPath = %q", settings.OutputPath)
	}
	if settings.MaxConcurrentLoads != 2 {
		t.Errorf("MaxConcurrentLoads = %d, want 2", settings.MaxConcurrentLoads)
	}
	if !settings.LoadVignettes {
		t.Error("LoadVignettes should be true")
	}
	if !settings.LoadThumbs {
		t.Error("LoadThumbs should keep its default")
	}
	if settings.Logging.Level != "debug" || settings.Logging.Format != "json" {
		t.Errorf("Logging = %+v", settings.Logging)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "max_concurrent_loads: [1"},
		{"zero concurrency", "max_concurrent_loads: 0"},
		{"bad log level", "logging:\n  level: loud"},
		{"unknown language", "language: xx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error but got none")
			}
		})
	}
}

func TestLoad_LanguageFromEnv(t *testing.T) {
	t.Setenv("TVDB_LANGUAGE", "FR")

	settings, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.Language != "FR" {
		t.Errorf("Language = %q, want FR", settings.Language)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	settings := DefaultSettings()
	settings.APIKey = "abc"
	settings.SaveImages = true
	t.Setenv("TVDB_API_KEY", "")

	if err := settings.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIKey != "abc" || !loaded.SaveImages {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestSettings_Links(t *testing.T) {
	settings := DefaultSettings()
	settings.BaseURL = "http://localhost:8080/"
	settings.APIKey = "KEY"

	links := settings.Links()
	if got := links.BannerLink("fanart/a.jpg"); got != "http://localhost:8080/banners/fanart/a.jpg" {
		t.Errorf("BannerLink() = %q", got)
	}
}
