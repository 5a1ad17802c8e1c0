package tvdb

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/handiism/tvdb-fanart/internal/model"
	"github.com/handiism/tvdb-fanart/internal/tvdb/dto"
)

// ErrNoFanart is returned when a banners document holds no fan art entries.
var ErrNoFanart = errors.New("no fan art found in banners document")

// Parser decodes banners.xml documents into FanartBanner records.
//
// Every returned record gets the parser's Source attached so its images can
// be loaded straight away.
type Parser struct {
	source *model.Source
	logger *slog.Logger
}

// NewParser creates a Parser. source may be nil if the records will only be
// inspected, never loaded.
func NewParser(source *model.Source, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		source: source,
		logger: logger.With(slog.String("component", "tvdb-parser")),
	}
}

// ParseBanners reads a banners.xml document and returns its fan art.
//
// Entries with a non-numeric id are skipped. Entries with malformed colors
// or resolution are kept with those fields empty. A document that cannot
// be decoded is an error, and so is a document without any fan art
// (ErrNoFanart).
func (p *Parser) ParseBanners(r io.Reader) ([]*model.FanartBanner, error) {
	var doc dto.XMLBanners
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding banners document: %w", err)
	}

	var banners []*model.FanartBanner
	for i := range doc.Banners {
		xb := &doc.Banners[i]
		if !xb.IsFanart() {
			continue
		}

		fa, fieldErrs, err := xb.ToFanartBanner()
		if err != nil {
			p.logger.Debug("skipping banner with invalid id",
				slog.String("id", xb.ID),
				slog.String("error", err.Error()))
			continue
		}
		for _, fe := range fieldErrs {
			p.logger.Debug("ignoring malformed banner field",
				slog.Int("banner_id", fa.ID),
				slog.String("field", fe.Field),
				slog.String("error", fe.Err.Error()))
		}

		fa.Source = p.source
		banners = append(banners, fa)
	}

	if len(banners) == 0 {
		return nil, ErrNoFanart
	}
	return banners, nil
}
