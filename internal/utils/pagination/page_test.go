package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWindowNormalizes(t *testing.T) {
	w := NewWindow(0, 0)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, DefaultLimit, w.Limit)

	w = NewWindow(-3, 500)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, MaxLimit, w.Limit)

	w = NewWindow(4, 10)
	assert.Equal(t, 30, w.Offset())
}

func TestMetaForBoundaries(t *testing.T) {
	// 25 rows, limit 10 -> 3 pages
	w := NewWindow(1, 10)
	m := w.MetaFor(25, 10)
	assert.Equal(t, 3, m.TotalPages)
	assert.Equal(t, int64(25), m.TotalUsers)
	assert.True(t, m.HasNext)
	assert.False(t, m.HasPrev)

	w = NewWindow(2, 10)
	m = w.MetaFor(25, 10)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	w = NewWindow(3, 10)
	m = w.MetaFor(25, 5)
	assert.False(t, m.HasNext)
	assert.True(t, m.HasPrev)
}

func TestMetaForEmpty(t *testing.T) {
	w := NewWindow(1, 10)
	m := w.MetaFor(0, 0)
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
