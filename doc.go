/*
Package ipaddr parses, normalizes, compares and serializes IPv4 and IPv6
addresses and CIDR ranges taken from free-form text.

To parse a piece of text into an immutable address value:

			addr, err := ipaddr.New("192.168.001.001")

To parse with a caller-chosen prefix length, replacing any /N already in
the text:

			cidr, err := ipaddr.NewWithPrefix("10.1.2.3", 8)

To render the canonical form:

			// "10.0.0.0/8", the inexact network address is corrected
			s := cidr.String()

To test range relationships:

			// returns bool, error
			ok, err := cidr.ContainsText("10.200.0.1")

One-off checks that do not warrant keeping an Address around are available
in stateless form, e.g.:

			ok, err := ipaddr.IsInRange("10.1.2.3", "10.0.0.0/8")

Malformed text is an expected input, reported as ErrInvalidAddress, never
as a panic. All exported values are immutable after construction and safe
for concurrent use.
*/
package ipaddr
