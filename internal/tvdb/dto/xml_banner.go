package dto

import (
	"strconv"
	"strings"

	"github.com/handiism/tvdb-fanart/internal/model"
)

// BannerTypeFanart is the BannerType value of fan art entries.
const BannerTypeFanart = "fanart"

// XMLBanners is the root element of a banners.xml document.
type XMLBanners struct {
	Banners []XMLBanner `xml:"Banner"`
}

// XMLBanner is one <Banner> element.
type XMLBanner struct {
	ID            string `xml:"id"`
	BannerPath    string `xml:"BannerPath"`
	BannerType    string `xml:"BannerType"`
	BannerType2   string `xml:"BannerType2"`
	Colors        string `xml:"Colors"`
	Language      string `xml:"Language"`
	ThumbnailPath string `xml:"ThumbnailPath"`
	VignettePath  string `xml:"VignettePath"`
}

// IsFanart reports whether the entry describes fan art.
func (xb *XMLBanner) IsFanart() bool {
	return strings.EqualFold(strings.TrimSpace(xb.BannerType), BannerTypeFanart)
}

// FieldError describes a field that could not be converted. The entry is
// still usable; the field is left at its zero value.
type FieldError struct {
	Field string
	Err   error
}

// ToFanartBanner converts the entry to a model.FanartBanner.
//
// The id must be numeric. Malformed colors or resolution are reported as
// FieldErrors and leave the corresponding fields empty.
func (xb *XMLBanner) ToFanartBanner() (*model.FanartBanner, []FieldError, error) {
	id, err := strconv.Atoi(strings.TrimSpace(xb.ID))
	if err != nil {
		return nil, nil, err
	}

	lang := model.DefaultLanguage
	if abbr := strings.TrimSpace(xb.Language); abbr != "" {
		lang, _ = model.LanguageByAbbreviation(abbr)
	}

	fa := model.NewFanartBanner(id, strings.TrimSpace(xb.BannerPath), lang)
	fa.ThumbPath = strings.TrimSpace(xb.ThumbnailPath)
	fa.VignettePath = strings.TrimSpace(xb.VignettePath)

	var fieldErrs []FieldError

	if s := strings.TrimSpace(xb.BannerType2); s != "" {
		res, err := model.ParseResolution(s)
		if err != nil {
			fieldErrs = append(fieldErrs, FieldError{Field: "BannerType2", Err: err})
		} else {
			fa.Resolution = res
		}
	}

	colors, err := model.ParseColors(xb.Colors)
	if err != nil {
		fieldErrs = append(fieldErrs, FieldError{Field: "Colors", Err: err})
	} else {
		fa.SetColors(colors)
	}

	return fa, fieldErrs, nil
}
