package ipaddr

import (
	"strconv"
	"strings"
)

const (
	v4Limbs     = 4
	v6Limbs     = 8
	v4MaxPrefix = 32
	v6MaxPrefix = 128
	v4LimbMax   = 0xff
	v6LimbMax   = 0xffff
)

// parsed is the transient result of a successful lexical parse. It is
// produced fresh per call, handed to deriveRange and then discarded.
type parsed struct {
	limbs     []uint16
	prefixLen int
	explicit  bool
}

// bidiControls are invisible Unicode bidirectional-control characters that
// commonly survive copy-paste. They are removed anywhere in the input so
// they cause neither false negatives nor false positives.
var bidiControls = []string{
	"‎", "‏",
	"‪", "‫", "‬", "‭", "‮",
}

// scrub removes bidi control characters and surrounding whitespace.
func scrub(text string) string {
	for _, c := range bidiControls {
		text = strings.ReplaceAll(text, c, "")
	}
	return strings.TrimSpace(text)
}

// parseText parses text into limbs plus prefix length. When hasOverride is
// set, any /N suffix already in the text is discarded and replaced by
// override before structural matching. Malformed input yields nil; a parse
// either fully succeeds or fully fails.
func parseText(text string, override int, hasOverride bool) *parsed {
	text = scrub(text)
	if text == "" {
		return nil
	}
	if hasOverride {
		if i := strings.IndexByte(text, '/'); i >= 0 {
			text = text[:i]
		}
		text += "/" + strconv.Itoa(override)
	}
	body, suffix, hasSuffix := strings.Cut(text, "/")
	if limbs := parseV4(body); limbs != nil {
		return withPrefix(limbs, suffix, hasSuffix, v4MaxPrefix)
	}
	if limbs := parseV6(body); limbs != nil {
		return withPrefix(limbs, suffix, hasSuffix, v6MaxPrefix)
	}
	return nil
}

// withPrefix validates the /N suffix against the family's bit range. An
// absent suffix means "exact host": the family maximum, not explicit.
// An out-of-range prefix fails the whole parse rather than being clamped.
func withPrefix(limbs []uint16, suffix string, hasSuffix bool, maxPrefix int) *parsed {
	if !hasSuffix {
		return &parsed{limbs: limbs, prefixLen: maxPrefix}
	}
	n, err := strconv.ParseUint(suffix, 10, 8)
	if err != nil || int(n) > maxPrefix {
		return nil
	}
	return &parsed{limbs: limbs, prefixLen: int(n), explicit: true}
}

// parseV4 matches four dot-separated decimal groups of 1-3 digits each with
// value 0-255. Leading zeros are accepted, "192.168.001.001" is valid.
func parseV4(body string) []uint16 {
	groups := strings.Split(body, ".")
	if len(groups) != v4Limbs {
		return nil
	}
	limbs := make([]uint16, v4Limbs)
	for i, g := range groups {
		if len(g) < 1 || len(g) > 3 || !isDecimal(g) {
			return nil
		}
		n, err := strconv.Atoi(g)
		if err != nil || n > v4LimbMax {
			return nil
		}
		limbs[i] = uint16(n)
	}
	return limbs
}

// parseV6 matches colon-separated hex groups of 1-4 digits each, with at
// most one :: run and never three consecutive colons. A :: must stand for
// at least one zero group and expansion must yield exactly 8 groups, which
// rejects both under- and over-specified addresses.
func parseV6(body string) []uint16 {
	if strings.Contains(body, ":::") {
		return nil
	}
	var groups []string
	switch strings.Count(body, "::") {
	case 0:
		groups = strings.Split(body, ":")
	case 1:
		left, right, _ := strings.Cut(body, "::")
		var head, tail []string
		if left != "" {
			head = strings.Split(left, ":")
		}
		if right != "" {
			tail = strings.Split(right, ":")
		}
		missing := v6Limbs - len(head) - len(tail)
		if missing < 1 {
			return nil
		}
		groups = append(groups, head...)
		for i := 0; i < missing; i++ {
			groups = append(groups, "0")
		}
		groups = append(groups, tail...)
	default:
		return nil
	}
	if len(groups) != v6Limbs {
		return nil
	}
	limbs := make([]uint16, v6Limbs)
	for i, g := range groups {
		if len(g) < 1 || len(g) > 4 {
			return nil
		}
		n, err := strconv.ParseUint(g, 16, 16)
		if err != nil {
			return nil
		}
		limbs[i] = uint16(n)
	}
	return limbs
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
