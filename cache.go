package ipaddr

import lru "github.com/hashicorp/golang-lru/v2"

// Cache memoizes parses for hot paths where the same texts recur, such as
// scanning log lines. Cached entries are shared immutable Address values,
// so handing the same pointer to multiple callers is safe. All methods are
// safe for concurrent use.
//
// The package never installs a global cache; callers who want memoization
// opt in by constructing one.
type Cache struct {
	addrs *lru.Cache[string, *Address]
}

// NewCache returns a Cache holding at most size parsed addresses.
func NewCache(size int) (*Cache, error) {
	addrs, err := lru.New[string, *Address](size)
	if err != nil {
		return nil, err
	}
	return &Cache{addrs: addrs}, nil
}

// Get returns the Address for text, parsing and recording it on a miss.
// Invalid text is not cached and reports ErrInvalidAddress every time.
func (c *Cache) Get(text string) (*Address, error) {
	if a, ok := c.addrs.Get(text); ok {
		return a, nil
	}
	a, err := New(text)
	if err != nil {
		return nil, err
	}
	c.addrs.Add(text, a)
	return a, nil
}

// Len returns the number of cached addresses.
func (c *Cache) Len() int {
	return c.addrs.Len()
}
