package ipaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRange(t *testing.T) {
	cases := []struct {
		text  string
		first []uint16
		last  []uint16
		name  string
	}{
		{
			"10.1.2.3",
			[]uint16{10, 1, 2, 3},
			[]uint16{10, 1, 2, 3},
			"bare address is its own range",
		},
		{
			"10.1.2.3/8",
			[]uint16{10, 0, 0, 0},
			[]uint16{10, 255, 255, 255},
			"inexact v4 network corrected",
		},
		{
			"192.168.1.0/24",
			[]uint16{192, 168, 1, 0},
			[]uint16{192, 168, 1, 255},
			"exact v4 network",
		},
		{
			"192.168.1.129/25",
			[]uint16{192, 168, 1, 128},
			[]uint16{192, 168, 1, 255},
			"prefix boundary inside a limb",
		},
		{
			"10.1.2.3/0",
			[]uint16{0, 0, 0, 0},
			[]uint16{255, 255, 255, 255},
			"zero prefix spans everything",
		},
		{
			"10.1.2.3/32",
			[]uint16{10, 1, 2, 3},
			[]uint16{10, 1, 2, 3},
			"max prefix is a single host",
		},
		{
			"fd12:3456:789a:1::1/64",
			[]uint16{0xfd12, 0x3456, 0x789a, 1, 0, 0, 0, 0},
			[]uint16{0xfd12, 0x3456, 0x789a, 1, 0xffff, 0xffff, 0xffff, 0xffff},
			"inexact v6 network corrected",
		},
		{
			"fd12::/20",
			[]uint16{0xfd12, 0, 0, 0, 0, 0, 0, 0},
			[]uint16{0xfd12, 0x0fff, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff},
			"v6 prefix boundary inside a limb",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseText(tc.text, 0, false)
			require.NotNil(t, p)
			r := deriveRange(p)
			assert.Equal(t, tc.first, r.first)
			assert.Equal(t, tc.last, r.last)
		})
	}
}

func TestDeriveRangeInvariant(t *testing.T) {
	// first[i] <= last[i] must hold for every limb of every prefix length.
	for _, text := range []string{"203.0.113.77", "fd12:3456:789a:1:2:3:4:5"} {
		p := parseText(text, 0, false)
		require.NotNil(t, p)
		familyBits := v4MaxPrefix
		if len(p.limbs) == v6Limbs {
			familyBits = v6MaxPrefix
		}
		for prefixLen := 0; prefixLen <= familyBits; prefixLen++ {
			r := deriveRange(&parsed{limbs: p.limbs, prefixLen: prefixLen, explicit: true})
			for i := range r.first {
				assert.LessOrEqual(t, r.first[i], r.last[i], "%s/%d limb %d", text, prefixLen, i)
			}
		}
	}
}
