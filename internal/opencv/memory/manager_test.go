package memory

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgba(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestGetPut(t *testing.T) {
	m := NewManager(4, 0, nil)
	key := Key{Path: "a.jpg", PanelW: 100, PanelH: 100}

	_, ok := m.Get(key)
	assert.False(t, ok)

	img := rgba(10, 10)
	m.Put(key, img)
	got, ok := m.Get(key)
	require.True(t, ok)
	assert.Same(t, img, got)

	other := key
	other.PanelW = 200
	_, ok = m.Get(other)
	assert.False(t, ok)

	stats := m.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(2), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, int64(400), stats.Bytes)
}

func TestEntryLimit(t *testing.T) {
	m := NewManager(2, 0, nil)
	m.Put(Key{Path: "a"}, rgba(1, 1))
	m.Put(Key{Path: "b"}, rgba(1, 1))
	m.Put(Key{Path: "c"}, rgba(1, 1))

	_, ok := m.Get(Key{Path: "a"})
	assert.False(t, ok)
	assert.Equal(t, 2, m.GetStats().Entries)
	assert.Equal(t, int64(8), m.GetStats().Bytes)
}

func TestByteBudget(t *testing.T) {
	// each 10x10 RGBA is 400 bytes
	m := NewManager(10, 1000, nil)
	m.Put(Key{Path: "a"}, rgba(10, 10))
	m.Put(Key{Path: "b"}, rgba(10, 10))
	_, _ = m.Get(Key{Path: "a"})
	m.Put(Key{Path: "c"}, rgba(10, 10))

	_, okA := m.Get(Key{Path: "a"})
	_, okB := m.Get(Key{Path: "b"})
	_, okC := m.Get(Key{Path: "c"})
	assert.True(t, okA)
	assert.False(t, okB)
	assert.True(t, okC)
	assert.Equal(t, int64(800), m.GetStats().Bytes)

	m.Put(Key{Path: "huge"}, rgba(100, 100))
	_, ok := m.Get(Key{Path: "huge"})
	assert.False(t, ok)
}

func TestReplaceAndCleanup(t *testing.T) {
	m := NewManager(4, 0, nil)
	key := Key{Path: "a"}
	m.Put(key, rgba(10, 10))
	m.Put(key, rgba(5, 5))
	assert.Equal(t, int64(100), m.GetStats().Bytes)
	assert.Equal(t, 1, m.GetStats().Entries)

	m.Cleanup()
	assert.Equal(t, 0, m.GetStats().Entries)
	assert.Equal(t, int64(0), m.GetStats().Bytes)
}
