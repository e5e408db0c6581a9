package unixhttp

import (
	"context"
	"net/netip"
)

// Placeholder is the only address a Resolver ever returns.
var Placeholder = netip.AddrPortFrom(netip.AddrFrom4([4]byte{127, 0, 0, 1}), 0)

// Resolver replaces name resolution for socket-routed requests. The host
// part of the request URL is meaningless, so resolution always succeeds
// with a loopback placeholder and never touches DNS.
type Resolver struct{}

// Resolve returns the placeholder address for any host.
func (Resolver) Resolve(_ context.Context, _ string) ([]netip.AddrPort, error) {
	return []netip.AddrPort{Placeholder}, nil
}
