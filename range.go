package ipaddr

// addrRange is the canonical internal representation of a parsed address:
// the inclusive first and last addresses of its prefix. Invariant: first
// and last differ only in bits below prefixLen. Never mutated after
// construction, accessors hand out copies.
type addrRange struct {
	first     []uint16
	last      []uint16
	prefixLen int
	explicit  bool
}

// limbWidth is the number of bits per limb: 8 for IPv4 octets, 16 for IPv6
// hextets.
func limbWidth(limbCount int) int {
	if limbCount == v4Limbs {
		return 8
	}
	return 16
}

func limbMax(limbCount int) uint16 {
	if limbCount == v4Limbs {
		return v4LimbMax
	}
	return v6LimbMax
}

// deriveRange computes the inclusive first and last addresses of the prefix
// with per-limb netmask arithmetic. Each limb is handled independently, so
// no wide-integer support is needed and overflow cannot occur. An address
// that is not the true network address for its prefix is silently
// corrected: 1::1/64 derives first 1::.
func deriveRange(p *parsed) *addrRange {
	width := limbWidth(len(p.limbs))
	limbCap := uint32(limbMax(len(p.limbs)))

	r := &addrRange{
		first:     make([]uint16, len(p.limbs)),
		last:      make([]uint16, len(p.limbs)),
		prefixLen: p.prefixLen,
		explicit:  p.explicit,
	}
	for i, limb := range p.limbs {
		bits := p.prefixLen - i*width
		if bits < 0 {
			bits = 0
		}
		if bits > width {
			bits = width
		}
		mask := (limbCap << (width - bits)) & limbCap
		r.first[i] = limb & uint16(mask)
		r.last[i] = r.first[i] | uint16(mask^limbCap)
	}
	return r
}

// version returns 4 or 6 depending on the range's limb count.
func (r *addrRange) version() int {
	if len(r.first) == v4Limbs {
		return 4
	}
	return 6
}

func (r *addrRange) maxPrefix() int {
	if len(r.first) == v4Limbs {
		return v4MaxPrefix
	}
	return v6MaxPrefix
}

func copyLimbs(limbs []uint16) []uint16 {
	out := make([]uint16, len(limbs))
	copy(out, limbs)
	return out
}
