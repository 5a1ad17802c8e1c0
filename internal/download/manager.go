package download

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/handiism/tvdb-fanart/internal/config"
	"github.com/handiism/tvdb-fanart/internal/http"
	ioutils "github.com/handiism/tvdb-fanart/internal/io"
	"github.com/handiism/tvdb-fanart/internal/model"
	"github.com/handiism/tvdb-fanart/internal/tvdb"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrAPIKeyRequired is returned when a series id is given without an API key.
	ErrAPIKeyRequired = errors.New("an API key is required to look up a series")

	// ErrNoBanners is returned when no input yielded any fan art.
	ErrNoBanners = errors.New("no fan art found")
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a load progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Slot names one of the lazily loaded images of a fan art record.
type Slot int

const (
	SlotThumb Slot = iota
	SlotVignette
)

func (s Slot) String() string {
	if s == SlotVignette {
		return "vignette"
	}
	return "thumb"
}

// Manager coordinates fan art loading.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	links      *tvdb.Links
	parser     *tvdb.Parser
	images     *ioutils.ImageService
	language   model.Language
	logger     *slog.Logger

	banners        []*model.FanartBanner
	totalLoads     int32
	completedLoads int32
	failedLoads    int32

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// NewManager creates a new Manager. logger may be nil.
func NewManager(settings *config.Settings, logger *slog.Logger, onProgress func(ProgressEvent)) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "download-manager"))

	httpClient := http.NewClient(http.WithRateLimit(settings.RequestsPerSecond))
	images := ioutils.NewImageService()
	links := settings.Links()
	language, _ := model.LanguageByAbbreviation(settings.Language)
	source := &model.Source{
		Links:   links,
		Fetcher: ioutils.NewImageFetcher(httpClient, images),
		Logger:  logger,
	}

	return &Manager{
		settings:   settings,
		httpClient: httpClient,
		links:      links,
		parser:     tvdb.NewParser(source, logger),
		images:     images,
		language:   language,
		logger:     logger,
		onProgress: onProgress,
	}
}

// Initialize resolves the inputs and decodes their banners documents.
//
// Banners in the configured language are listed first, then those in the
// default language, then the rest.
//
// input holds one or more entries separated by newlines or commas. Each
// entry is a path to a banners.xml file, an http(s) URL of one, or a
// numeric series id. Entries that fail are reported and skipped;
// ErrNoBanners is returned if nothing was found at all.
func (m *Manager) Initialize(ctx context.Context, input string) error {
	for _, entry := range parseInputs(input) {
		banners, err := m.loadDocument(ctx, entry)
		if err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error reading banners from %s: %v", entry, err), Level: LevelError})
			continue
		}

		m.mu.Lock()
		m.banners = append(m.banners, banners...)
		m.mu.Unlock()
		m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d fan art banner(s) in %s", len(banners), entry), Level: LevelInfo})
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.banners) == 0 {
		return ErrNoBanners
	}
	sortByLanguage(m.banners, m.language)

	m.totalLoads = 0
	for range m.banners {
		if m.settings.LoadThumbs {
			m.totalLoads++
		}
		if m.settings.LoadVignettes {
			m.totalLoads++
		}
	}
	return nil
}

// StartDownloads loads the configured images of every banner.
//
// Each call starts a new run: the completed and failed counters are reset.
// Individual load failures are reported through the progress callback and
// do not stop the other loads. The returned error is only non-nil when ctx
// is cancelled.
func (m *Manager) StartDownloads(ctx context.Context) error {
	atomic.StoreInt32(&m.completedLoads, 0)
	atomic.StoreInt32(&m.failedLoads, 0)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentLoads)

	for _, banner := range m.Banners() {
		if m.settings.LoadThumbs {
			g.Go(func() error {
				m.loadSlot(ctx, banner, SlotThumb)
				return ctx.Err()
			})
		}
		if m.settings.LoadVignettes {
			g.Go(func() error {
				m.loadSlot(ctx, banner, SlotVignette)
				return ctx.Err()
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	completed, failed, total := m.GetProgress()
	if failed == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d/%d images", completed, total), Level: LevelSuccess})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d/%d images, %d failed", completed, total, failed), Level: LevelWarning})
	}
	return nil
}

// GetProgress returns the number of completed and failed loads and the
// total number of loads planned.
func (m *Manager) GetProgress() (completed, failed, total int32) {
	m.mu.RLock()
	total = m.totalLoads
	m.mu.RUnlock()
	return atomic.LoadInt32(&m.completedLoads), atomic.LoadInt32(&m.failedLoads), total
}

// Banners returns the banners found by Initialize.
func (m *Manager) Banners() []*model.FanartBanner {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.FanartBanner, len(m.banners))
	copy(out, m.banners)
	return out
}

// GetBannerNames returns a one-line description of every banner.
func (m *Manager) GetBannerNames() []string {
	banners := m.Banners()
	names := make([]string, len(banners))
	for i, b := range banners {
		res := "unknown size"
		if !b.Resolution.IsZero() {
			res = b.Resolution.String()
		}
		names[i] = fmt.Sprintf("#%d %s [%s]", b.ID, res, b.Language.Abbreviation)
	}
	return names
}

// sortByLanguage moves banners in the preferred language to the front,
// followed by those in the default language. The order within each group
// is kept.
func sortByLanguage(banners []*model.FanartBanner, preferred model.Language) {
	rank := func(b *model.FanartBanner) int {
		switch b.Language.Abbreviation {
		case preferred.Abbreviation:
			return 0
		case model.DefaultLanguage.Abbreviation:
			return 1
		}
		return 2
	}
	slices.SortStableFunc(banners, func(a, b *model.FanartBanner) int {
		return cmp.Compare(rank(a), rank(b))
	})
}

func parseInputs(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == '\n' || r == ','
	})
	var entries []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			entries = append(entries, f)
		}
	}
	return entries
}

// loadDocument resolves one input entry and parses its banners document.
func (m *Manager) loadDocument(ctx context.Context, entry string) ([]*model.FanartBanner, error) {
	if strings.HasPrefix(entry, "http://") || strings.HasPrefix(entry, "https://") {
		return m.fetchDocument(ctx, entry)
	}

	if id, err := strconv.Atoi(entry); err == nil {
		if m.settings.APIKey == "" {
			return nil, ErrAPIKeyRequired
		}
		return m.fetchDocument(ctx, m.links.SeriesBannersLink(id))
	}

	f, err := os.Open(entry)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return m.parser.ParseBanners(f)
}

func (m *Manager) fetchDocument(ctx context.Context, url string) ([]*model.FanartBanner, error) {
	var doc string
	var err error

	for tries := 0; tries < m.settings.MaxRetries; tries++ {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching banners: %s", url), Level: LevelVerbose})

		doc, err = m.httpClient.GetString(ctx, url)
		if err == nil || !retryable(err) {
			break
		}
		if tries+1 < m.settings.MaxRetries {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Retry %d/%d for %s", tries+1, m.settings.MaxRetries, url), Level: LevelWarning})
			m.waitForRetry(ctx, tries)
		}
	}
	if err != nil {
		return nil, err
	}

	return m.parser.ParseBanners(strings.NewReader(doc))
}

// retryable reports whether a failed request is worth repeating. Client
// errors (4xx) and cancellation are not.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *http.StatusError
	if errors.As(err, &se) {
		return se.StatusCode >= 500
	}
	return true
}

func (m *Manager) loadSlot(ctx context.Context, banner *model.FanartBanner, slot Slot) {
	var ok, loaded bool
	var img image.Image

	switch slot {
	case SlotVignette:
		ok = banner.LoadVignette(ctx)
		loaded, img = banner.IsVignetteLoaded(), banner.Vignette()
	default:
		ok = banner.LoadThumb(ctx)
		loaded, img = banner.IsThumbLoaded(), banner.Thumb()
	}

	if !loaded {
		atomic.AddInt32(&m.failedLoads, 1)
		m.progress(ProgressEvent{Message: fmt.Sprintf("Couldn't load %s of banner #%d", slot, banner.ID), Level: LevelError})
		return
	}

	atomic.AddInt32(&m.completedLoads, 1)
	if ok {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %s of banner #%d", slot, banner.ID), Level: LevelVerbose})
	} else {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Already loaded %s of banner #%d", slot, banner.ID), Level: LevelVerbose})
	}

	if m.settings.SaveImages {
		if err := m.saveImage(ctx, banner, slot, img); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error saving %s of banner #%d: %v", slot, banner.ID, err), Level: LevelWarning})
		}
	}
}

// ImageSize asks the server for the size in bytes of one image of a banner
// without downloading it.
func (m *Manager) ImageSize(ctx context.Context, banner *model.FanartBanner, slot Slot) (int64, error) {
	path := banner.ThumbPath
	if slot == SlotVignette {
		path = banner.VignettePath
	}
	if path == "" {
		return 0, model.ErrEmptyPath
	}
	return m.httpClient.GetFileSize(ctx, m.links.BannerLink(path))
}

// ImagePath returns where the given slot of a banner is saved.
func (m *Manager) ImagePath(banner *model.FanartBanner, slot Slot) string {
	name := ioutils.SanitizeFileName(fmt.Sprintf("%d_%s.jpg", banner.ID, slot))
	return filepath.Join(m.settings.OutputPath, name)
}

func (m *Manager) saveImage(ctx context.Context, banner *model.FanartBanner, slot Slot, img image.Image) error {
	if m.settings.ResizeOnSave {
		img = m.images.ResizeImage(img, m.settings.SaveMaxSize, m.settings.SaveMaxSize)
	}

	data, err := m.images.EncodeJPEG(img, m.settings.JPEGQuality)
	if err != nil {
		return fmt.Errorf("encoding jpeg: %w", err)
	}

	path := m.ImagePath(banner, slot)
	if err := ioutils.WriteFile(ctx, path, data); err != nil {
		return err
	}

	m.logger.Debug("saved image", slog.Int("banner_id", banner.ID), slog.String("slot", slot.String()), slog.String("path", path))
	return nil
}

func (m *Manager) waitForRetry(ctx context.Context, tries int) {
	cooldown := m.settings.RetryCooldown * math.Pow(m.settings.RetryExponent, float64(tries))
	select {
	case <-ctx.Done():
	case <-time.After(time.Duration(cooldown * float64(time.Second))):
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
