package ipaddr

// CIDRMode controls whether validation-style operations accept a /N suffix.
type CIDRMode int

const (
	// CIDRDisallow accepts bare addresses only.
	CIDRDisallow CIDRMode = iota

	// CIDRAllow accepts bare addresses and CIDR ranges.
	CIDRAllow

	// CIDRStrict is CIDRAllow plus network-address correction: a CIDR
	// whose given address is not the true first address of its prefix is
	// reported as Corrected together with the canonical text.
	CIDRStrict
)

// Validity is the three-way outcome of Check.
type Validity int

const (
	// Invalid means the text is not a valid address under the mode.
	Invalid Validity = iota

	// Valid means the text is a bare address or a syntactically exact CIDR.
	Valid

	// Corrected means the text was a CIDR with an inexact network address;
	// CheckResult.Corrected carries the canonical text.
	Corrected
)

// CheckResult is the outcome of Check. Corrected is set only when Validity
// is Corrected.
type CheckResult struct {
	Validity  Validity
	Corrected string
}

// Predicate rejects a parse whose structure does not match the caller's
// expectation. It receives the address version (4 or 6) and whether the
// text carried a /N suffix, is evaluated exactly once per parse, and must
// be free of side effects.
type Predicate func(version int, isRange bool) bool

// Check validates text under the given mode. In CIDRStrict mode the result
// is three-way: Valid for bare addresses and exact CIDRs, Corrected with
// the canonical CIDR text for an inexact network prefix, Invalid for
// structurally bad input.
func Check(text string, mode CIDRMode) CheckResult {
	p := parseText(text, 0, false)
	if p == nil {
		return CheckResult{}
	}
	if p.explicit && mode == CIDRDisallow {
		return CheckResult{}
	}
	if mode != CIDRStrict || !p.explicit {
		return CheckResult{Validity: Valid}
	}
	r := deriveRange(p)
	for i := range p.limbs {
		if p.limbs[i] != r.first[i] {
			return CheckResult{
				Validity:  Corrected,
				Corrected: formatLimbs(r.first, r.suffix(), Options{}),
			}
		}
	}
	return CheckResult{Validity: Valid}
}

// IsValid reports whether text is a valid bare address, CIDR suffixes
// rejected.
func IsValid(text string) bool {
	return Check(text, CIDRDisallow).Validity == Valid
}

// IsValidRange reports whether text is a valid CIDR range. A bare address
// is not a range.
func IsValidRange(text string) bool {
	p := parseText(text, 0, false)
	return p != nil && p.explicit
}

// IsValidMatching reports whether text parses and its structure satisfies
// pred.
func IsValidMatching(text string, pred Predicate) bool {
	p := parseText(text, 0, false)
	if p == nil {
		return false
	}
	version := 6
	if len(p.limbs) == v4Limbs {
		version = 4
	}
	return pred(version, p.explicit)
}

// Sanitize parses text and returns its sanitized canonical form.
func Sanitize(text string) (string, error) {
	return Format(text, Options{})
}

// Format parses text and renders it in the notation selected by o.
func Format(text string, o Options) (string, error) {
	a, err := New(text)
	if err != nil {
		return "", err
	}
	return a.Format(o), nil
}

// IsInRange parses both texts and reports whether cidr contains addr.
// Either text failing to parse is ErrInvalidAddress; a cross-family pair
// is false with a nil error.
func IsInRange(addr, cidr string) (bool, error) {
	a, err := New(addr)
	if err != nil {
		return false, err
	}
	r, err := New(cidr)
	if err != nil {
		return false, err
	}
	return r.Contains(a), nil
}

// IsInAnyRange reports whether addr is contained in any of the range
// texts, stopping at the first match.
func IsInAnyRange(addr string, ranges []string) (bool, error) {
	a, err := New(addr)
	if err != nil {
		return false, err
	}
	return a.InAnyRange(ranges)
}

// IndexOfRange returns the index of the first range text containing addr,
// or -1 when no range matches. -1 with a nil error always means a valid
// address with no match; an invalid addr is ErrInvalidAddress and an empty
// collection is ErrEmptyCollection.
func IndexOfRange(addr string, ranges []string) (int, error) {
	a, err := New(addr)
	if err != nil {
		return -1, err
	}
	return a.IndexOfRange(ranges)
}

// ContainsAll reports whether cidr contains every one of the address
// texts, failing fast on the first non-match.
func ContainsAll(cidr string, addrs []string) (bool, error) {
	a, err := New(cidr)
	if err != nil {
		return false, err
	}
	return a.ContainsAll(addrs)
}

// EqualsAny reports whether addr is strictly equal to any of the texts,
// stopping at the first match.
func EqualsAny(addr string, others []string) (bool, error) {
	a, err := New(addr)
	if err != nil {
		return false, err
	}
	return a.EqualsAny(others)
}
