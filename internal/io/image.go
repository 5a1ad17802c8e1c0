package ioutils

import (
	"bytes"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// DefaultJPEGQuality is used when EncodeJPEG is given a quality outside 1..100.
const DefaultJPEGQuality = 90

// ImageService provides the image operations used on fan art.
//
// ImageService is used to:
//   - Decode downloaded artwork into image.Image
//   - Shrink images before saving them
//   - Encode images as JPEG
type ImageService struct{}

// NewImageService creates a new ImageService.
func NewImageService() *ImageService {
	return &ImageService{}
}

// Decode decodes image data in any registered format and returns the
// image together with the format name ("jpeg", "png", ...).
func (s *ImageService) Decode(data []byte) (image.Image, string, error) {
	return image.Decode(bytes.NewReader(data))
}

// ResizeImage scales img to fit within maxWidth x maxHeight.
//
// The aspect ratio is preserved and images are never enlarged; an image
// that already fits is returned unchanged. The Catmull-Rom kernel is used
// for scaling.
//
// Example:
//
//	// A 1920x1080 vignette becomes 300x168
//	thumb := svc.ResizeImage(vignette, 300, 300)
func (s *ImageService) ResizeImage(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if maxWidth <= 0 || maxHeight <= 0 || (width <= maxWidth && height <= maxHeight) {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}

// EncodeJPEG encodes img as JPEG with the given quality.
func (s *ImageService) EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
