package cache

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	assert := assert.New(t)

	cache := NewCache(DefaultExpiration, 0)
	defer cache.Close()

	cache.Set("key1", "value1", DefaultExpiration)
	value, found := cache.Get("key1")
	assert.True(found)
	assert.Equal("value1", value)

	_, found = cache.Get("nonexistent")
	assert.False(found)

	cache.Set("key2", "42", 50*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	_, found = cache.Get("key2")
	assert.False(found)

	cache.Set("key3", "keep", NoExpiration)
	time.Sleep(100 * time.Millisecond)
	_, found = cache.Get("key3")
	assert.True(found)
}

func TestCacheDelete(t *testing.T) {
	assert := assert.New(t)

	cache := NewCache(DefaultExpiration, 0)
	defer cache.Close()

	cache.Set("key1", "value1", DefaultExpiration)
	cache.Delete("key1")
	_, found := cache.Get("key1")
	assert.False(found)

	// deleting a missing key must not fail
	cache.Delete("nonexistent")
}

func TestCacheExpiration(t *testing.T) {
	assert := assert.New(t)

	cache := NewCache(50*time.Millisecond, 100*time.Millisecond)
	defer cache.Close()

	cache.Set("key1", "1", DefaultExpiration)
	cache.Set("key2", "2", 200*time.Millisecond)
	cache.Set("key3", "3", NoExpiration)

	time.Sleep(75 * time.Millisecond)

	_, found := cache.Get("key1")
	assert.False(found)
	_, found = cache.Get("key2")
	assert.True(found)

	time.Sleep(150 * time.Millisecond)
	cache.DeleteExpired()

	_, found = cache.Get("key2")
	assert.False(found)
	_, found = cache.Get("key3")
	assert.True(found)
}

func TestCacheConcurrency(t *testing.T) {
	cache := NewCache(5*time.Minute, 0)
	defer cache.Close()

	const workers = 10
	const iterations = 100

	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := 0; i < workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				cache.Set(strconv.Itoa(workerID), strconv.Itoa(j), DefaultExpiration)
			}
		}(i)
	}

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				for k := 0; k < workers; k++ {
					cache.Get(strconv.Itoa(k))
				}
			}
		}()
	}

	wg.Wait()
}

func TestCacheClose(t *testing.T) {
	assert := assert.New(t)

	cache := NewCache(DefaultExpiration, time.Minute)
	assert.NoError(cache.Close())

	// cache stays usable after the janitor stops
	cache.Set("key", "value", DefaultExpiration)
	value, found := cache.Get("key")
	assert.True(found)
	assert.Equal("value", value)

	cache2 := NewCache(DefaultExpiration, 0)
	assert.NoError(cache2.Close())
}
