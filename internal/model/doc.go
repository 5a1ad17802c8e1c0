// Package model defines the banner records handled by tvdb-fanart.
//
// # Banner
//
// Banner is the base record shared by every TheTVDB artwork type. It
// carries the numeric id, the relative BannerPath on the artwork server and
// the Language the artwork was tagged with:
//
//	b := model.Banner{ID: 42, BannerPath: "fanart/original/80348-1.jpg", Language: model.DefaultLanguage}
//
// # FanartBanner
//
// FanartBanner adds the fan art specific fields (thumbnail path, vignette
// path, resolution and the three artist-selected accent colors) together
// with two lazily loaded images:
//
//	fa := model.NewFanartBanner(42, "fanart/original/80348-1.jpg", model.DefaultLanguage)
//	fa.ThumbPath = "_cache/fanart/original/80348-1.jpg"
//	fa.Source = &model.Source{Links: links, Fetcher: fetcher, Logger: logger}
//
//	if fa.LoadThumb(ctx) {
//	    thumb := fa.Thumb()
//	    _ = thumb
//	}
//
// # Loading
//
// Each image slot (banner, thumb, vignette) has its own lock. At most one
// fetch per slot is in flight at a time; callers racing on the same slot
// wait for the running fetch and then skip their own unless they asked to
// replace the image. Different slots never block each other.
//
// The Load* methods report failures only through their boolean result and
// the Is*Loaded flags; the error is logged through Source.Logger. Use the
// Fetch* variants to receive the error itself.
package model
