package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
)

// This test requires a running memcached instance
// If memcached is not available, the test will be skipped
func TestMemcacheService(t *testing.T) {
	mc := NewMemcacheService("localhost:11211")

	// Test if memcached is available
	_, err := mc.client.Get("ping")
	if err != nil && err != memcache.ErrCacheMiss {
		t.Skip("Memcached is not available, skipping test")
	}

	// Remember a notified status text
	err = mc.Set("stockwatch:last_notified", []byte("Available at your store"), 1*time.Second)
	assert.NoError(t, err)

	value, err := mc.Get("stockwatch:last_notified")
	assert.NoError(t, err)
	assert.Equal(t, "Available at your store", string(value))

	// Delete the value
	err = mc.Delete("stockwatch:last_notified")
	assert.NoError(t, err)

	_, err = mc.Get("stockwatch:last_notified")
	assert.Error(t, err)
}
