package ipaddr

import "strconv"

// Address is an immutable IPv4 or IPv6 address or CIDR range. The text is
// parsed once at construction and the derived range is cached, so repeated
// queries against the same address never re-parse. The zero value is
// unusable: construct through New or NewWithPrefix.
type Address struct {
	r *addrRange
}

// New parses text into an Address. Bad syntax, out-of-bounds groups and
// out-of-range prefix lengths all report ErrInvalidAddress.
func New(text string) (*Address, error) {
	p := parseText(text, 0, false)
	if p == nil {
		return nil, ErrInvalidAddress
	}
	return &Address{r: deriveRange(p)}, nil
}

// NewWithPrefix parses text with prefixLen replacing any /N suffix already
// present in the text, letting a bare address string be reused with a
// caller-chosen prefix.
func NewWithPrefix(text string, prefixLen int) (*Address, error) {
	p := parseText(text, prefixLen, true)
	if p == nil {
		return nil, ErrInvalidAddress
	}
	return &Address{r: deriveRange(p)}, nil
}

// rng guards against zero-value misuse. That is a bad call, not bad data,
// so it panics instead of reporting ErrInvalidAddress.
func (a *Address) rng() *addrRange {
	if a == nil || a.r == nil {
		panic("ipaddr: Address must be constructed with New or NewWithPrefix")
	}
	return a.r
}

// Version returns 4 or 6.
func (a *Address) Version() int {
	return a.rng().version()
}

// PrefixLen returns the prefix length in bits. A bare address reports the
// family maximum, 32 or 128.
func (a *Address) PrefixLen() int {
	return a.rng().prefixLen
}

// IsCIDR reports whether the original text carried a /N suffix. It does
// not depend on whether the prefix length equals the family maximum:
// "10.0.0.1/32" is a CIDR, "10.0.0.1" is not.
func (a *Address) IsCIDR() bool {
	return a.rng().explicit
}

// String returns the sanitized canonical form, including the /N suffix for
// CIDR input. An inexact network address has already been corrected at
// construction, so the rendered text is always the true network address.
func (a *Address) String() string {
	r := a.rng()
	return formatLimbs(r.first, r.suffix(), Options{})
}

// Format renders the address in the notation selected by o, including the
// /N suffix for CIDR input.
func (a *Address) Format(o Options) string {
	r := a.rng()
	return formatLimbs(r.first, r.suffix(), o)
}

// First returns the sanitized first address of the range, without suffix.
func (a *Address) First() string {
	r := a.rng()
	return formatLimbs(r.first, "", Options{})
}

// Last returns the sanitized last address of the range, without suffix.
func (a *Address) Last() string {
	r := a.rng()
	return formatLimbs(r.last, "", Options{})
}

// Limbs returns a copy of the first address of the range as positional
// groups, octets for IPv4 and hextets for IPv6. Mutating the returned
// slice does not affect a.
func (a *Address) Limbs() []uint16 {
	return copyLimbs(a.rng().first)
}

// FirstAddress returns the first address of the range as a fully formed
// non-CIDR Address.
func (a *Address) FirstAddress() *Address {
	return hostAddress(a.rng(), a.rng().first)
}

// LastAddress returns the last address of the range as a fully formed
// non-CIDR Address.
func (a *Address) LastAddress() *Address {
	return hostAddress(a.rng(), a.rng().last)
}

func hostAddress(r *addrRange, limbs []uint16) *Address {
	return &Address{r: &addrRange{
		first:     copyLimbs(limbs),
		last:      copyLimbs(limbs),
		prefixLen: r.maxPrefix(),
	}}
}

// Contains reports whether a wholly contains other. Cross-family pairs are
// a defined non-match.
func (a *Address) Contains(other *Address) bool {
	return rangeContains(a.rng(), other.rng())
}

// ContainsText parses text and reports whether a contains it.
func (a *Address) ContainsText(text string) (bool, error) {
	r := a.rng()
	other, err := New(text)
	if err != nil {
		return false, err
	}
	return rangeContains(r, other.r), nil
}

// Within reports whether a is wholly contained by other.
func (a *Address) Within(other *Address) bool {
	return rangeContains(other.rng(), a.rng())
}

// Equal reports strict equality: same family, same first address, same
// prefix length and same CIDR-ness. "192.168.1.1" is not equal to
// "192.168.1.1/32"; parse both through NewWithPrefix to compare them under
// a shared explicit prefix.
func (a *Address) Equal(other *Address) bool {
	return rangesEqual(a.rng(), other.rng())
}

// InAnyRange reports whether a is contained in any of the given range
// texts, stopping at the first match. Members that fail to parse are
// non-matches. An empty collection reports ErrEmptyCollection.
func (a *Address) InAnyRange(ranges []string) (bool, error) {
	r := a.rng()
	if len(ranges) == 0 {
		return false, ErrEmptyCollection
	}
	for _, text := range ranges {
		other, err := New(text)
		if err != nil {
			continue
		}
		if rangeContains(other.r, r) {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAll reports whether a contains every one of the given address
// texts, failing fast on the first non-match. A member that fails to parse
// is a non-match. An empty collection reports ErrEmptyCollection.
func (a *Address) ContainsAll(addrs []string) (bool, error) {
	r := a.rng()
	if len(addrs) == 0 {
		return false, ErrEmptyCollection
	}
	for _, text := range addrs {
		other, err := New(text)
		if err != nil {
			return false, nil
		}
		if !rangeContains(r, other.r) {
			return false, nil
		}
	}
	return true, nil
}

// IndexOfRange returns the index of the first range text that contains a,
// or -1 when no range matches. Members that fail to parse are skipped. An
// empty collection reports ErrEmptyCollection.
func (a *Address) IndexOfRange(ranges []string) (int, error) {
	r := a.rng()
	if len(ranges) == 0 {
		return -1, ErrEmptyCollection
	}
	for i, text := range ranges {
		other, err := New(text)
		if err != nil {
			continue
		}
		if rangeContains(other.r, r) {
			return i, nil
		}
	}
	return -1, nil
}

// EqualsAny reports whether a is strictly equal to any of the given texts,
// stopping at the first match. An empty collection reports
// ErrEmptyCollection.
func (a *Address) EqualsAny(others []string) (bool, error) {
	r := a.rng()
	if len(others) == 0 {
		return false, ErrEmptyCollection
	}
	for _, text := range others {
		other, err := New(text)
		if err != nil {
			continue
		}
		if rangesEqual(r, other.r) {
			return true, nil
		}
	}
	return false, nil
}

func (r *addrRange) suffix() string {
	if !r.explicit {
		return ""
	}
	return "/" + strconv.Itoa(r.prefixLen)
}
