package model

import (
	"context"
	"errors"
	"image"
	"log/slog"
)

var (
	// ErrNoSource is returned when a banner has no Source (or no Fetcher)
	// to load its images from.
	ErrNoSource = errors.New("banner has no image source")

	// ErrEmptyPath is returned when the path of the requested image is empty.
	ErrEmptyPath = errors.New("image path is empty")

	// ErrNilImage is returned when a fetcher reports success without an image.
	ErrNilImage = errors.New("fetcher returned no image")
)

// LinkBuilder turns a path relative to the artwork server into a fully
// qualified URL.
type LinkBuilder interface {
	BannerLink(path string) string
}

// ImageFetcher downloads and decodes the image at url.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (image.Image, error)
}

// Source bundles the collaborators a banner needs to load its images.
//
// Links may be nil, in which case paths are passed to the Fetcher as-is.
// Logger may be nil, in which case slog.Default() is used.
type Source struct {
	Links   LinkBuilder
	Fetcher ImageFetcher
	Logger  *slog.Logger
}

func (s *Source) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// fetch resolves path through the link builder and fetches the image.
func (s *Source) fetch(ctx context.Context, path string) (image.Image, error) {
	if s == nil || s.Fetcher == nil {
		return nil, ErrNoSource
	}
	if path == "" {
		return nil, ErrEmptyPath
	}

	url := path
	if s.Links != nil {
		url = s.Links.BannerLink(path)
	}

	img, err := s.Fetcher.FetchImage(ctx, url)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, ErrNilImage
	}
	return img, nil
}
