// Package memory bounds the memory held by decoded display images.
package memory

import (
	"image"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"

	"image-labeler/internal/logger"
)

const (
	DefaultMaxEntries = 32
	DefaultMaxBytes   = 512 * 1024 * 1024
)

// Key identifies one rendering of one file. Size and modification time are
// part of it so a changed file is never served stale.
type Key struct {
	Path    string
	ModTime time.Time
	Size    int64
	PanelW  int
	PanelH  int
}

type Stats struct {
	Hits     int64
	Misses   int64
	Entries  int
	Bytes    int64
	MaxBytes int64
}

// Manager is an LRU of scaled images limited by entry count and by bytes.
type Manager struct {
	mu       sync.Mutex
	cache    *lru.Cache
	sizes    map[Key]int64
	stats    Stats
	maxBytes int64
	logger   logger.Logger
}

func NewManager(maxEntries int, maxBytes int64, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	m := &Manager{
		cache:    lru.New(maxEntries),
		sizes:    make(map[Key]int64),
		maxBytes: maxBytes,
		logger:   log,
	}
	m.cache.OnEvicted = func(key lru.Key, _ interface{}) {
		k := key.(Key)
		m.stats.Bytes -= m.sizes[k]
		delete(m.sizes, k)
	}
	return m
}

func (m *Manager) Get(key Key) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.cache.Get(key)
	if !ok {
		m.stats.Misses++
		return nil, false
	}
	m.stats.Hits++
	return v.(image.Image), true
}

// Put stores img, evicting the least recently used images until the byte
// budget holds. An image larger than the whole budget is not stored.
func (m *Manager) Put(key Key, img image.Image) {
	size := imageBytes(img)
	if m.maxBytes > 0 && size > m.maxBytes {
		m.logger.Debug("MemoryManager", "image exceeds cache budget", map[string]interface{}{
			"path":  key.Path,
			"bytes": size,
		})
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sizes[key]; ok {
		m.cache.Remove(key)
	}
	m.cache.Add(key, img)
	m.sizes[key] = size
	m.stats.Bytes += size

	for m.maxBytes > 0 && m.stats.Bytes > m.maxBytes && m.cache.Len() > 1 {
		m.cache.RemoveOldest()
	}
}

func (m *Manager) GetStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := m.stats
	stats.Entries = m.cache.Len()
	stats.MaxBytes = m.maxBytes
	return stats
}

// Cleanup drops every cached image.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.cache.Len()
	m.cache.Clear()
	m.logger.Debug("MemoryManager", "image cache cleared", map[string]interface{}{
		"entries": entries,
		"hits":    m.stats.Hits,
		"misses":  m.stats.Misses,
	})
}

func imageBytes(img image.Image) int64 {
	switch im := img.(type) {
	case *image.RGBA:
		return int64(len(im.Pix))
	case *image.NRGBA:
		return int64(len(im.Pix))
	case *image.Gray:
		return int64(len(im.Pix))
	}
	b := img.Bounds()
	return int64(b.Dx()) * int64(b.Dy()) * 4
}
