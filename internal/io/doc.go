// Package ioutils provides image and file system utilities.
//
// This package contains:
//   - Image decoding, resizing and JPEG encoding
//   - An ImageFetcher that downloads and decodes artwork
//   - Filename sanitization and file writing for saved artwork
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//
//	img, format, _ := svc.Decode(data)
//	small := svc.ResizeImage(img, 300, 300)
//	jpeg, _ := svc.EncodeJPEG(small, 90)
//
// Besides the standard library's JPEG, PNG and GIF decoders, BMP, TIFF and
// WebP are registered through golang.org/x/image.
//
// # Fetching Artwork
//
// ImageFetcher satisfies model.ImageFetcher and is what banner records use
// to load their thumbnails and vignettes:
//
//	fetcher := ioutils.NewImageFetcher(client, svc)
//	img, err := fetcher.FetchImage(ctx, "https://thetvdb.com/banners/fanart/vignette/80348-2.jpg")
//
// # File Operations
//
//	safe := ioutils.SanitizeFileName("Series: Part 1/2") // "Series_ Part 1_2"
//	err := ioutils.EnsureDir("/art/80348")
//	err = ioutils.WriteFile(ctx, "/art/80348/23541_thumb.jpg", jpeg)
package ioutils
