package ioutils

import (
	"context"
	"fmt"
	"image"
)

// Downloader fetches raw bytes from a URL. *http.Client from
// internal/http satisfies it.
type Downloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// ImageFetcher downloads artwork and decodes it.
type ImageFetcher struct {
	downloader Downloader
	images     *ImageService
}

// NewImageFetcher creates an ImageFetcher. A nil svc uses a new ImageService.
func NewImageFetcher(d Downloader, svc *ImageService) *ImageFetcher {
	if svc == nil {
		svc = NewImageService()
	}
	return &ImageFetcher{downloader: d, images: svc}
}

// FetchImage downloads the image at url and decodes it.
func (f *ImageFetcher) FetchImage(ctx context.Context, url string) (image.Image, error) {
	data, err := f.downloader.DownloadBytes(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}

	img, _, err := f.images.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", url, err)
	}
	return img, nil
}
