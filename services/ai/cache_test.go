package ai

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_GetPut(t *testing.T) {
	cache := NewCache()

	// Miss on empty cache
	text, ok := cache.Get("k1")
	assert.False(t, ok)
	assert.Empty(t, text)

	// Put then hit
	cache.Put("k1", "positive")
	text, ok = cache.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "positive", text)

	// Entries never expire or get evicted
	assert.Equal(t, 1, cache.Len())

	stats := cache.Stats()
	assert.Equal(t, 1, stats.Size)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRate)
}

func TestCache_PutReplaces(t *testing.T) {
	cache := NewCache()

	cache.Put("k1", "first")
	cache.Put("k1", "second")

	text, ok := cache.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "second", text)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_EmptyTextIsCacheable(t *testing.T) {
	cache := NewCache()

	cache.Put("k1", "")
	text, ok := cache.Get("k1")
	assert.True(t, ok)
	assert.Empty(t, text)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%8)
			for j := 0; j < 100; j++ {
				cache.Put(key, "value")
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, cache.Len())
}

func TestCache_HitRateEmpty(t *testing.T) {
	cache := NewCache()
	assert.Zero(t, cache.Stats().HitRate)
}
