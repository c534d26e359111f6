package cache

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"byaura/pkg/logger"
)

type record struct {
	ID   int64
	Name string
}

func newTestCache(t *testing.T) *ResourceCache[record] {
	t.Helper()
	log := logger.New(logger.ErrorLevel, io.Discard)
	return New("records", func(r record) int64 { return r.ID }, log)
}

func TestReplaceAllSwapsContents(t *testing.T) {
	c := newTestCache(t)
	c.Upsert(record{ID: 99, Name: "stale"})

	c.ReplaceAll([]record{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}})

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(99)
	assert.False(t, ok)

	got, ok := c.Get(2)
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)
}

func TestUpsertAndRemove(t *testing.T) {
	c := newTestCache(t)

	c.Upsert(record{ID: 5, Name: "first"})
	c.Upsert(record{ID: 5, Name: "second"})
	assert.Equal(t, 1, c.Len())

	got, ok := c.Get(5)
	require.True(t, ok)
	assert.Equal(t, "second", got.Name)

	c.Remove(5)
	_, ok = c.Get(5)
	assert.False(t, ok)
}

func TestAllReturnsSnapshot(t *testing.T) {
	c := newTestCache(t)
	c.ReplaceAll([]record{{ID: 1}, {ID: 2}, {ID: 3}})

	all := c.All()
	assert.Len(t, all, 3)

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Len(t, all, 3)
}
