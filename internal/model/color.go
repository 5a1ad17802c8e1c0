package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// Hex returns the color in #rrggbb notation.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColors parses the TheTVDB color list format.
//
// The format is a pipe separated list of comma separated RGB components,
// with leading and trailing pipes:
//
//	|217,177,118|59,40,27|135,128,114|
//
// An empty string yields an empty list.
func ParseColors(s string) ([]Color, error) {
	s = strings.Trim(strings.TrimSpace(s), "|")
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, "|")
	colors := make([]Color, 0, len(parts))
	for _, part := range parts {
		c, err := parseColor(part)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseColor(s string) (Color, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return Color{}, fmt.Errorf("invalid color %q: want r,g,b", s)
	}

	var rgb [3]uint8
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		rgb[i] = uint8(v)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Resolution is the pixel size of an image. The zero value means unknown.
type Resolution struct {
	Width  int
	Height int
}

// ParseResolution parses a "WIDTHxHEIGHT" string such as "1920x1080".
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution width %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution height %q", s)
	}
	return Resolution{Width: width, Height: height}, nil
}

// IsZero reports whether the resolution is unknown.
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}
