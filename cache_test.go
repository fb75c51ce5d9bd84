package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGet(t *testing.T) {
	c, err := NewCache(16)
	require.NoError(t, err)

	a, err := c.Get("10.1.2.3/8")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", a.String())
	assert.Equal(t, 1, c.Len())

	// A repeated text yields the same immutable value.
	b, err := c.Get("10.1.2.3/8")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, c.Len())

	_, err = c.Get("junk")
	assert.ErrorIs(t, err, ErrInvalidAddress)
	assert.Equal(t, 1, c.Len(), "invalid text is not cached")
}

func TestCacheEviction(t *testing.T) {
	c, err := NewCache(2)
	require.NoError(t, err)

	for _, text := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		_, err := c.Get(text)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())
}

func TestCacheBadSize(t *testing.T) {
	_, err := NewCache(0)
	assert.Error(t, err)
}
