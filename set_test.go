package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInsertRemove(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Insert("10.0.0.0/8"))
	require.NoError(t, s.Insert("fd12::/64"))
	assert.Equal(t, 2, s.Len())

	// Texts canonicalizing to a stored range do not grow the set.
	require.NoError(t, s.Insert("10.1.2.3/8"))
	assert.Equal(t, 2, s.Len())

	assert.ErrorIs(t, s.Insert("junk"), ErrInvalidAddress)
	assert.Equal(t, 2, s.Len())

	removed, err := s.Remove("10.1.2.3/8")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/8", removed)
	assert.Equal(t, 1, s.Len())

	removed, err = s.Remove("192.168.0.0/16")
	require.NoError(t, err)
	assert.Equal(t, "", removed, "removing an absent range is a no-op")
}

func TestSetContains(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Insert("10.0.0.0/8"))
	require.NoError(t, s.Insert("10.1.0.0/16"))
	require.NoError(t, s.Insert("fd12::/64"))

	cases := []struct {
		addr     string
		contains bool
		name     string
	}{
		{"10.1.2.3", true, "v4 in both ranges"},
		{"10.200.0.1", true, "v4 in broad range only"},
		{"11.0.0.0", false, "v4 outside"},
		{"fd12::42", true, "v6 inside"},
		{"fd13::42", false, "v6 outside"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := s.Contains(tc.addr)
			require.NoError(t, err)
			assert.Equal(t, tc.contains, ok)
		})
	}

	_, err := s.Contains("junk")
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestSetContainingRanges(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Insert("10.0.0.0/8"))
	require.NoError(t, s.Insert("10.1.0.0/16"))
	require.NoError(t, s.Insert("192.168.0.0/16"))

	hits, err := s.ContainingRanges("10.1.2.3")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"10.0.0.0/8", "10.1.0.0/16"}, hits)

	hits, err = s.ContainingRanges("172.16.0.1")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
