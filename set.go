package ipaddr

// Set is a stored collection of CIDR ranges with membership lookups,
// keyed by canonical text and split into per-family buckets so that
// lookups only scan ranges of the queried family. Inclusion tests are
// performed linearly at no guaranteed traversal order, a worst case of
// O(N); the collections in scope here are small enough that a prefix
// index would not pay for itself.
//
// Set is not safe for concurrent mutation.
type Set struct {
	v4Ranges map[string]*Address
	v6Ranges map[string]*Address
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{
		v4Ranges: make(map[string]*Address),
		v6Ranges: make(map[string]*Address),
	}
}

// Insert parses text and adds its range to the set. Inserting text that
// canonicalizes to an already stored range is a no-op.
func (s *Set) Insert(text string) error {
	a, err := New(text)
	if err != nil {
		return err
	}
	ranges := s.rangesByVersion(a.Version())
	key := a.String()
	if _, found := ranges[key]; !found {
		ranges[key] = a
	}
	return nil
}

// Remove parses text and removes its range from the set, returning the
// canonical text of the removed range or "" if it was not stored.
func (s *Set) Remove(text string) (string, error) {
	a, err := New(text)
	if err != nil {
		return "", err
	}
	ranges := s.rangesByVersion(a.Version())
	key := a.String()
	if _, found := ranges[key]; found {
		delete(ranges, key)
		return key, nil
	}
	return "", nil
}

// Contains reports whether addr is contained by any range in the set.
func (s *Set) Contains(addr string) (bool, error) {
	a, err := New(addr)
	if err != nil {
		return false, err
	}
	for _, stored := range s.rangesByVersion(a.Version()) {
		if stored.Contains(a) {
			return true, nil
		}
	}
	return false, nil
}

// ContainingRanges returns the canonical texts of every stored range that
// contains addr, in no particular order.
func (s *Set) ContainingRanges(addr string) ([]string, error) {
	a, err := New(addr)
	if err != nil {
		return nil, err
	}
	var results []string
	for key, stored := range s.rangesByVersion(a.Version()) {
		if stored.Contains(a) {
			results = append(results, key)
		}
	}
	return results, nil
}

// Len returns the number of ranges in the set.
func (s *Set) Len() int {
	return len(s.v4Ranges) + len(s.v6Ranges)
}

func (s *Set) rangesByVersion(version int) map[string]*Address {
	if version == 4 {
		return s.v4Ranges
	}
	return s.v6Ranges
}
