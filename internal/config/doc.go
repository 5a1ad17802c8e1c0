// Package config provides configuration management for tvdb-fanart.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Default configuration values
//   - TVDB_* environment variable overrides
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Saves to ~/Pictures/TVDB
//	// Loads thumbnails, not vignettes
//	// 4 concurrent loads
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // a missing file is not an error, defaults are used
//	}
//
// # Environment
//
// After the file is read, these variables take precedence:
//   - TVDB_API_KEY: API key used to locate banners documents
//   - TVDB_BASE_URL: site and artwork server root
//   - TVDB_OUTPUT: directory loaded artwork is saved to
//   - TVDB_LOG_LEVEL: debug, info, warn or error
package config
