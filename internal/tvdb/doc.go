// Package tvdb builds TheTVDB artwork links and decodes banner documents
// into model records.
//
// # Links
//
// Links turns relative artwork paths into absolute URLs and builds the
// location of a series' banners document:
//
//	links := tvdb.NewLinks("https://thetvdb.com", apiKey)
//	links.BannerLink("fanart/original/80348-1.jpg")
//	// https://thetvdb.com/banners/fanart/original/80348-1.jpg
//	links.SeriesBannersLink(80348)
//	// https://thetvdb.com/api/<key>/series/80348/banners.xml
//
// Links implements model.LinkBuilder, so it can be used directly as the
// Links field of a model.Source.
//
// # Banner Documents
//
// Parser decodes a banners.xml document and returns its fan art entries:
//
//	parser := tvdb.NewParser(source, logger)
//	banners, err := parser.ParseBanners(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, b := range banners {
//	    fmt.Println(b.ID, b.Resolution, b.ThumbPath)
//	}
//
// Entries of other banner types (series, season, poster) are skipped.
package tvdb
