package extiptrace

import (
	"context"
	"net/http"
	"net/netip"
	"time"

	"github.com/frantjc/pubip/internal/extip"
	"github.com/frantjc/pubip/internal/logutil"
)

// DefaultTimeout is used when ExternalIPAddressGetter.Timeout is unset.
const DefaultTimeout = time.Second

// ExternalIPAddressGetter implements extip.ExternalIPAddressGetter
// by requesting a trace response and parsing the client IP address
// out of it.
type ExternalIPAddressGetter struct {
	// Client makes the request. Its transport decides which IP
	// family the request, and therefore the reported address, uses.
	Client *http.Client
	// URL defaults to CloudflareTraceURL.
	URL string
	// Timeout defaults to DefaultTimeout.
	Timeout time.Duration
}

var _ extip.ExternalIPAddressGetter = &ExternalIPAddressGetter{}

// GetExternalIPAddress implements extip.ExternalIPAddressGetter.
func (g *ExternalIPAddressGetter) GetExternalIPAddress(ctx context.Context) (netip.Addr, error) {
	var (
		url     = g.URL
		timeout = g.Timeout
	)

	if url == "" {
		url = CloudflareTraceURL
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	body, err := Fetch(ctx, g.Client, url, timeout)
	if err != nil {
		return netip.Addr{}, err
	}

	addr, err := ParseTrace(body)
	if err != nil {
		return netip.Addr{}, err
	}

	logutil.SloggerFrom(ctx).Info("got external IP address", "addr", addr.String())

	return addr, nil
}
