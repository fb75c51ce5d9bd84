package ipaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the textual notation produced by the stringifier.
type Mode int

const (
	// ModeSanitized is the canonical form: undecorated decimal for IPv4,
	// all eight limbs in minimal lowercase hex for IPv6 with no ::
	// collapsing. This is the zero value and the form String returns.
	ModeSanitized Mode = iota

	// ModeShort collapses the first maximal run (scanning left to right)
	// of two or more zero limbs of an IPv6 address to ::. IPv4 output is
	// identical to ModeSanitized.
	ModeShort

	// ModeLong zero-pads every limb, to 3 decimal digits for IPv4 and
	// 4 hex digits for IPv6, and never collapses.
	ModeLong
)

// Options configures the stringifier. The zero value produces the
// sanitized canonical form.
type Options struct {
	Mode Mode

	// Capitalize uppercases the entire result, including hex digits.
	// Applied after all other formatting.
	Capitalize bool
}

// formatLimbs renders limbs in the notation selected by o and appends
// suffix (the /N part, or empty) verbatim.
func formatLimbs(limbs []uint16, suffix string, o Options) string {
	var s string
	if len(limbs) == v4Limbs {
		s = formatV4(limbs, o.Mode)
	} else {
		s = formatV6(limbs, o.Mode)
	}
	s += suffix
	if o.Capitalize {
		s = strings.ToUpper(s)
	}
	return s
}

func formatV4(limbs []uint16, mode Mode) string {
	parts := make([]string, len(limbs))
	for i, limb := range limbs {
		if mode == ModeLong {
			parts[i] = fmt.Sprintf("%03d", limb)
		} else {
			parts[i] = strconv.Itoa(int(limb))
		}
	}
	return strings.Join(parts, ".")
}

func formatV6(limbs []uint16, mode Mode) string {
	parts := make([]string, len(limbs))
	for i, limb := range limbs {
		if mode == ModeLong {
			parts[i] = fmt.Sprintf("%04x", limb)
		} else {
			parts[i] = strconv.FormatUint(uint64(limb), 16)
		}
	}
	if mode != ModeShort {
		return strings.Join(parts, ":")
	}
	start, length := longestZeroRun(limbs)
	if length < 2 {
		return strings.Join(parts, ":")
	}
	// Joining the two sides around a literal :: keeps edge runs well
	// formed: a run touching either end yields ::1 or 1:: rather than a
	// spurious extra colon, and an all-zero address collapses to ::.
	head := strings.Join(parts[:start], ":")
	tail := strings.Join(parts[start+length:], ":")
	return head + "::" + tail
}

// longestZeroRun finds the first maximal run of consecutive zero limbs,
// scanning left to right. Ties between equal-length runs go to the
// earliest one; a strictly longer later run wins.
func longestZeroRun(limbs []uint16) (start, length int) {
	runStart, runLen := 0, 0
	for i, limb := range limbs {
		if limb != 0 {
			runLen = 0
			continue
		}
		if runLen == 0 {
			runStart = i
		}
		runLen++
		if runLen > length {
			start, length = runStart, runLen
		}
	}
	return start, length
}
