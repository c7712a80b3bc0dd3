package extipraw_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/frantjc/pubip/internal/extip/extipraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExternalIPAddress(t *testing.T) {
	want := netip.MustParseAddr("203.0.113.9")

	got, err := extipraw.ExternalIPAddressGetter(want).GetExternalIPAddress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetExternalIPAddress_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extipraw.ExternalIPAddressGetter(netip.IPv6Loopback()).GetExternalIPAddress(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
