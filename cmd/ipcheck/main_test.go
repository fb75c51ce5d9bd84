package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netparse/ipaddr"
)

func TestParseOptions(t *testing.T) {
	cases := []struct {
		mode     string
		caps     bool
		expected ipaddr.Options
		valid    bool
		name     string
	}{
		{"sanitized", false, ipaddr.Options{}, true, "sanitized"},
		{"", false, ipaddr.Options{}, true, "empty defaults to sanitized"},
		{"short", true, ipaddr.Options{Mode: ipaddr.ModeShort, Capitalize: true}, true, "short caps"},
		{"long", false, ipaddr.Options{Mode: ipaddr.ModeLong}, true, "long"},
		{"pretty", false, ipaddr.Options{}, false, "unknown mode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts, err := parseOptions(tc.mode, tc.caps)
			if !tc.valid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, opts)
		})
	}
}

func TestLoadRanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranges.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ranges:\n  - 10.0.0.0/8\n  - fd12::/64\n"), 0o600))

	ranges, err := loadRanges(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "fd12::/64"}, ranges)

	_, err = loadRanges(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunExitCodes(t *testing.T) {
	cases := []struct {
		args []string
		code int
		name string
	}{
		{[]string{"ipcheck", "check", "10.0.0.1"}, 0, "valid address"},
		{[]string{"ipcheck", "check", "256.0.0.1"}, 1, "invalid address"},
		{[]string{"ipcheck", "check", "--strict", "10.1.2.3/8"}, 0, "corrected is not a failure"},
		{[]string{"ipcheck", "fmt", "--mode", "short", "fd12:3456:789a:1::1"}, 0, "format"},
		{[]string{"ipcheck", "fmt", "--mode", "pretty", "10.0.0.1"}, 2, "unknown mode"},
		{[]string{"ipcheck", "in", "--range", "10.0.0.0/8", "10.1.2.3"}, 0, "member"},
		{[]string{"ipcheck", "in", "--range", "10.0.0.0/8", "11.0.0.0"}, 1, "non-member"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, run(tc.args))
		})
	}
}
