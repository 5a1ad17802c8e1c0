// Package download loads fan art for whole banner documents.
//
// # Manager
//
// The Manager coordinates the process:
//
//  1. Resolve each input (banners.xml file, URL or series id)
//  2. Fetch and decode the banners documents
//  3. Load thumbnails and/or vignettes concurrently
//  4. Optionally save the loaded images as JPEG files
//
// # Basic Usage
//
//	manager := download.NewManager(settings, logger, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx, "80348"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := manager.StartDownloads(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// At most settings.MaxConcurrentLoads image loads run at a time. Each load
// goes through the banner's own LoadThumb/LoadVignette, so a banner never
// fetches the same image twice concurrently even if it is shared with
// other callers.
//
// # Retry Logic
//
// Banners documents are fetched with retries and exponential backoff,
// configured by settings.MaxRetries, settings.RetryCooldown and
// settings.RetryExponent. Image loads are not retried.
package download
