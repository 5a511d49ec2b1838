// Package imagestore keeps the optional per-item image payloads. The bytes
// are opaque to the domain; the only interpretation is a decode check for
// display, and bytes that fail to decode surface as "no image" rather than
// an error.
package imagestore

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sync"
)

// Store maps menu item identifiers to raw image bytes.
type Store struct {
	mu     sync.RWMutex
	images map[int64][]byte
}

// New creates an empty store.
func New() *Store {
	return &Store{
		images: make(map[int64][]byte),
	}
}

// Put stores the image bytes for an item, replacing any previous payload.
func (s *Store) Put(itemID int64, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[itemID] = append([]byte(nil), data...)
}

// Get returns the stored bytes for an item, if any.
func (s *Store) Get(itemID int64) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.images[itemID]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// Remove discards the image for an item, if any.
func (s *Store) Remove(itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.images, itemID)
}

// Decodable reports whether the bytes decode as a supported image format.
// Undecodable payloads are treated as absent images, never as failures.
func Decodable(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	_, _, err := image.Decode(bytes.NewReader(data))
	return err == nil
}
