package model

import (
	"context"
	"image"
	"log/slog"
)

// Banner is the base record for every piece of TheTVDB artwork.
//
// Banner holds the identity of the artwork and its own lazily loaded
// full-size image. Specialised records such as FanartBanner embed it.
type Banner struct {
	// ID is the artwork id assigned by TheTVDB.
	ID int

	// BannerPath is the path of the full-size image relative to the
	// artwork server, e.g. "fanart/original/80348-1.jpg".
	BannerPath string

	// Language is the language the artwork is tagged with.
	Language Language

	// Source provides the collaborators used by the Load methods.
	Source *Source

	banner imageSlot
}

// LoadBanner loads the full-size image unless it is already loaded.
func (b *Banner) LoadBanner(ctx context.Context) bool {
	return b.LoadBannerReplace(ctx, false)
}

// LoadBannerReplace loads the full-size image. When replaceExisting is
// false and the image is already loaded it returns false without fetching.
// Failures are logged and reported as false.
func (b *Banner) LoadBannerReplace(ctx context.Context, replaceExisting bool) bool {
	ok, err := b.FetchBanner(ctx, replaceExisting)
	if err != nil {
		b.logLoadError("banner", b.BannerPath, err)
	}
	return ok
}

// FetchBanner is LoadBannerReplace returning the load error instead of
// logging it.
func (b *Banner) FetchBanner(ctx context.Context, replaceExisting bool) (bool, error) {
	return b.banner.load(ctx, replaceExisting, func(ctx context.Context) (image.Image, error) {
		return b.Source.fetch(ctx, b.BannerPath)
	})
}

// SetBannerImage stores an image the caller fetched itself.
// A nil image marks the banner image as not loaded and returns false.
func (b *Banner) SetBannerImage(img image.Image) bool {
	return b.banner.set(img)
}

// IsBannerLoaded reports whether the full-size image is loaded.
func (b *Banner) IsBannerLoaded() bool { return b.banner.isLoaded() }

// BannerLoading reports whether the full-size image is being fetched.
func (b *Banner) BannerLoading() bool { return b.banner.isLoading() }

// BannerImage returns the full-size image, or nil if it is not loaded.
func (b *Banner) BannerImage() image.Image { return b.banner.image() }

func (b *Banner) logLoadError(slot, path string, err error) {
	b.Source.logger().Error("couldn't load banner image",
		slog.Int("banner_id", b.ID),
		slog.String("slot", slot),
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}
