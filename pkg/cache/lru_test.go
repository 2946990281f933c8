package cache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/record/pkg/cache"
)

func TestNew(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { cache.New[string, int](0) })
	assert.Panics(t, func() { cache.New[string, int](-1) })
	assert.Equal(t, 0, cache.New[string, int](1).Len())
}

func TestLRU_GetAdd(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](2)

	assert.False(t, c.Add("a", 1))
	assert.False(t, c.Add("b", 2))

	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// "b" is now the least recently used entry
	assert.True(t, c.Add("c", 3))
	_, ok = c.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	assert.False(t, c.Add("a", 10), "updating an existing key never evicts")
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get("a")
	assert.False(t, ok)
}

func TestLRU_GetOrAdd(t *testing.T) {
	t.Parallel()

	t.Run("builds once", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, string](4)
		calls := 0
		build := func() (string, error) {
			calls++
			return "value", nil
		}

		for range 3 {
			v, err := c.GetOrAdd("k", build)
			require.NoError(t, err)
			assert.Equal(t, "value", v)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()
		c := cache.New[string, string](4)
		boom := errors.New("boom")

		_, err := c.GetOrAdd("k", func() (string, error) { return "", boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 0, c.Len())
	})
}

func TestLRU_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New[string, int](8)
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%12)
			v, err := c.GetOrAdd(key, func() (int, error) { return i % 12, nil })
			assert.NoError(t, err)
			assert.Equal(t, i%12, v)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 8)
}
