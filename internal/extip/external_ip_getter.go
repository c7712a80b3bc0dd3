package extip

import (
	"context"
	"net/netip"
)

// ExternalIPAddressGetter gets the public-facing IP address
// of the host it runs on.
type ExternalIPAddressGetter interface {
	GetExternalIPAddress(context.Context) (netip.Addr, error)
}

// ExternalIPAddressGetterFunc adapts a function to ExternalIPAddressGetter.
type ExternalIPAddressGetterFunc func(context.Context) (netip.Addr, error)

// GetExternalIPAddress implements ExternalIPAddressGetter.
func (f ExternalIPAddressGetterFunc) GetExternalIPAddress(ctx context.Context) (netip.Addr, error) {
	return f(ctx)
}
