package model

import (
	"context"
	"image"
	"sync"
)

// imageSlot is one lazily loaded image together with its cache state.
//
// loadMu is held for the whole duration of a fetch so at most one fetch
// per slot is in flight. mu guards the fields below it and is only held
// for short reads and writes, so state queries never wait for a download.
type imageSlot struct {
	loadMu sync.Mutex

	mu      sync.RWMutex
	img     image.Image
	loaded  bool
	loading bool
}

func (s *imageSlot) isLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *imageSlot) isLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// image returns the stored image, or nil unless the slot is loaded.
func (s *imageSlot) image() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil
	}
	return s.img
}

// set stores an image obtained by the caller. It does not take loadMu.
func (s *imageSlot) set(img image.Image) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img == nil {
		s.loaded = false
		return false
	}
	s.img = img
	s.loaded = true
	return true
}

// load runs fetch under the slot lock unless the slot is already loaded
// and replace is false. It reports whether a new image was stored.
func (s *imageSlot) load(ctx context.Context, replace bool, fetch func(context.Context) (image.Image, error)) (ok bool, err error) {
	if !replace && s.isLoaded() {
		return false, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// Another caller may have finished loading while we waited.
	if !replace && s.isLoaded() {
		return false, nil
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	var img image.Image
	defer func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.loading = false
		if ok {
			s.img = img
			s.loaded = true
			return
		}
		s.img = nil
		s.loaded = false
	}()

	img, err = fetch(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}
