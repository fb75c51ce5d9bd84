package ipaddr

// rangeContains reports whether outer wholly contains inner. Families must
// match: a cross-family pair is a defined non-match, never an error.
//
// Both sides are prefix ranges, so each is exactly the product of its
// per-limb intervals and containment reduces to per-limb interval
// containment.
func rangeContains(outer, inner *addrRange) bool {
	if len(outer.first) != len(inner.first) {
		return false
	}
	for i := range outer.first {
		if outer.first[i] > inner.first[i] || inner.last[i] > outer.last[i] {
			return false
		}
	}
	return true
}

// rangesEqual reports strict equality: same family, same prefix length,
// same explicitness and identical first limbs. A bare address is therefore
// not equal to the same address written with a /32 or /128 suffix. last is
// fully determined by first and the prefix length, so it is not compared.
func rangesEqual(a, b *addrRange) bool {
	if len(a.first) != len(b.first) {
		return false
	}
	if a.prefixLen != b.prefixLen || a.explicit != b.explicit {
		return false
	}
	for i := range a.first {
		if a.first[i] != b.first[i] {
			return false
		}
	}
	return true
}
