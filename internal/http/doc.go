// Package http provides the HTTP client used to talk to TheTVDB.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Optional request rate limiting (golang.org/x/time/rate)
//   - Typed errors for non-200 responses
//
// # Basic Usage
//
//	client := http.NewClient(http.WithRateLimit(5))
//
//	// Fetch a banners document
//	doc, err := client.GetString(ctx, "https://thetvdb.com/api/KEY/series/80348/banners.xml")
//
//	// Download artwork bytes
//	data, err := client.DownloadBytes(ctx, "https://thetvdb.com/banners/fanart/original/80348-2.jpg")
//
// # Errors
//
// A response with a status other than 200 OK yields a *StatusError:
//
//	var se *http.StatusError
//	if errors.As(err, &se) && se.StatusCode == 404 {
//	    // artwork was removed
//	}
package http
