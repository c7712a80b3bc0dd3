package extipraw

import (
	"context"
	"net/netip"

	"github.com/frantjc/pubip/internal/extip"
)

// ExternalIPAddressGetter implements extip.ExternalIPAddressGetter
// by providing itself as the external IP address.
type ExternalIPAddressGetter netip.Addr

var _ extip.ExternalIPAddressGetter = ExternalIPAddressGetter{}

// GetExternalIPAddress implements extip.ExternalIPAddressGetter.
func (g ExternalIPAddressGetter) GetExternalIPAddress(ctx context.Context) (netip.Addr, error) {
	if err := ctx.Err(); err != nil {
		return netip.Addr{}, err
	}

	return netip.Addr(g), nil
}
