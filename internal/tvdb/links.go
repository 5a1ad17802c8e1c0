package tvdb

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the root of TheTVDB's site and artwork server.
const DefaultBaseURL = "https://thetvdb.com"

// Links builds TheTVDB URLs from a base URL and an API key.
type Links struct {
	BaseURL string
	APIKey  string
}

// NewLinks creates Links for the given base URL. An empty base selects
// DefaultBaseURL.
func NewLinks(baseURL, apiKey string) *Links {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Links{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
	}
}

// BannerLink returns the absolute URL of an artwork path.
//
// Paths that are already absolute http(s) URLs are returned unchanged and
// an empty path yields an empty string.
func (l *Links) BannerLink(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return l.BaseURL + "/banners/" + strings.TrimLeft(path, "/")
}

// SeriesBannersLink returns the URL of the banners document of a series.
func (l *Links) SeriesBannersLink(seriesID int) string {
	return fmt.Sprintf("%s/api/%s/series/%d/banners.xml", l.BaseURL, l.APIKey, seriesID)
}
