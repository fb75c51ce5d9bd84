package ipaddr

import "errors"

// ErrInvalidAddress is returned when text does not represent a valid IPv4 or
// IPv6 address or CIDR range. It covers bad syntax, out-of-bounds groups and
// out-of-range prefix lengths alike.
var ErrInvalidAddress = errors.New("invalid address input")

// ErrEmptyCollection is returned by collection queries when the collection
// argument is nil or empty. It is distinct from a negative answer: an
// all-query over nothing is not vacuously true here.
var ErrEmptyCollection = errors.New("empty collection input")
