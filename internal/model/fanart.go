package model

import (
	"context"
	"image"
)

// FanartBanner is a piece of fan art: high quality background artwork
// shown behind other content in media center menus.
//
// Besides the full-size image inherited from Banner, fan art comes with a
// smaller thumbnail and a vignette (the full-resolution image with darkened
// edges). Both are loaded lazily and cached on the record:
//
//	fa := NewFanartBanner(1, "fanart/original/80348-1.jpg", DefaultLanguage)
//	fa.ThumbPath = "_cache/fanart/original/80348-1.jpg"
//	fa.Source = source
//
//	fa.LoadThumb(ctx)            // fetches once
//	fa.LoadThumb(ctx)            // returns false, already loaded
//	fa.LoadThumbReplace(ctx, true) // fetches again
//
// A FanartBanner must not be copied after first use.
type FanartBanner struct {
	Banner

	// ThumbPath is the path of the thumbnail relative to the artwork server.
	ThumbPath string

	// VignettePath is the path of the vignette relative to the artwork server.
	VignettePath string

	// Resolution is the size of the full-size image, 1920x1080 or 1280x720.
	Resolution Resolution

	// Color1 is the light accent color.
	Color1 Color

	// Color2 is the dark accent color.
	Color2 Color

	// Color3 is the neutral mid-tone color.
	Color3 Color

	// Colors holds the artist-selected colors in order: light accent,
	// dark accent, neutral mid-tone.
	Colors []Color

	thumb    imageSlot
	vignette imageSlot
}

// NewFanartBanner creates a fan art record with the given identity.
func NewFanartBanner(id int, path string, lang Language) *FanartBanner {
	return &FanartBanner{
		Banner: Banner{
			ID:         id,
			BannerPath: path,
			Language:   lang,
		},
	}
}

// SetColors sets Colors and fills Color1..Color3 from its first entries.
func (f *FanartBanner) SetColors(colors []Color) {
	f.Colors = colors
	f.Color1, f.Color2, f.Color3 = Color{}, Color{}, Color{}
	for i, c := range colors {
		switch i {
		case 0:
			f.Color1 = c
		case 1:
			f.Color2 = c
		case 2:
			f.Color3 = c
		}
	}
}

// LoadThumb loads the thumbnail unless it is already loaded.
func (f *FanartBanner) LoadThumb(ctx context.Context) bool {
	return f.LoadThumbReplace(ctx, false)
}

// LoadThumbReplace loads the thumbnail.
//
// If the thumbnail is already loaded and replaceExisting is false, it
// returns false without doing any work. Otherwise it takes the thumbnail
// lock, so a concurrent caller waits for the running fetch and re-checks
// before fetching itself. Failures are logged, leave the thumbnail
// unloaded and return false.
func (f *FanartBanner) LoadThumbReplace(ctx context.Context, replaceExisting bool) bool {
	ok, err := f.FetchThumb(ctx, replaceExisting)
	if err != nil {
		f.logLoadError("thumb", f.ThumbPath, err)
	}
	return ok
}

// FetchThumb is LoadThumbReplace returning the load error instead of
// logging it. A skipped load returns false and a nil error.
func (f *FanartBanner) FetchThumb(ctx context.Context, replaceExisting bool) (bool, error) {
	return f.thumb.load(ctx, replaceExisting, func(ctx context.Context) (image.Image, error) {
		return f.Source.fetch(ctx, f.ThumbPath)
	})
}

// SetThumb stores a thumbnail the caller fetched itself.
//
// A non-nil image marks the thumbnail loaded and returns true; nil marks it
// not loaded and returns false. SetThumb does not take the thumbnail lock.
func (f *FanartBanner) SetThumb(img image.Image) bool {
	return f.thumb.set(img)
}

// IsThumbLoaded reports whether the thumbnail is loaded.
func (f *FanartBanner) IsThumbLoaded() bool { return f.thumb.isLoaded() }

// ThumbLoading reports whether the thumbnail is being fetched.
func (f *FanartBanner) ThumbLoading() bool { return f.thumb.isLoading() }

// Thumb returns the thumbnail, or nil if it is not loaded.
func (f *FanartBanner) Thumb() image.Image { return f.thumb.image() }

// LoadVignette loads the vignette unless it is already loaded.
func (f *FanartBanner) LoadVignette(ctx context.Context) bool {
	return f.LoadVignetteReplace(ctx, false)
}

// LoadVignetteReplace loads the vignette. It behaves like
// LoadThumbReplace but uses the vignette lock, so thumbnail and vignette
// loads never wait on each other.
func (f *FanartBanner) LoadVignetteReplace(ctx context.Context, replaceExisting bool) bool {
	ok, err := f.FetchVignette(ctx, replaceExisting)
	if err != nil {
		f.logLoadError("vignette", f.VignettePath, err)
	}
	return ok
}

// FetchVignette is LoadVignetteReplace returning the load error.
func (f *FanartBanner) FetchVignette(ctx context.Context, replaceExisting bool) (bool, error) {
	return f.vignette.load(ctx, replaceExisting, func(ctx context.Context) (image.Image, error) {
		return f.Source.fetch(ctx, f.VignettePath)
	})
}

// SetVignette stores a vignette the caller fetched itself.
func (f *FanartBanner) SetVignette(img image.Image) bool {
	return f.vignette.set(img)
}

// IsVignetteLoaded reports whether the vignette is loaded.
func (f *FanartBanner) IsVignetteLoaded() bool { return f.vignette.isLoaded() }

// VignetteLoading reports whether the vignette is being fetched.
func (f *FanartBanner) VignetteLoading() bool { return f.vignette.isLoading() }

// Vignette returns the vignette, or nil if it is not loaded.
func (f *FanartBanner) Vignette() image.Image { return f.vignette.image() }
