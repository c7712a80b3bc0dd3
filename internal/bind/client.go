package bind

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
)

// NewDialer returns a *net.Dialer whose connections originate
// from the wildcard address of m's family.
func NewDialer(m Mode) *net.Dialer {
	d := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	if laddr := m.LocalAddr(); laddr != nil {
		d.LocalAddr = laddr
	}

	return d
}

// DialContextFunc returns a function suitable for http.Transport.DialContext
// that dials with NewDialer(m).
func DialContextFunc(m Mode) func(context.Context, string, string) (net.Conn, error) {
	d := NewDialer(m)

	return func(ctx context.Context, network, address string) (net.Conn, error) {
		var (
			log = logr.FromContextOrDiscard(ctx).V(1).WithValues("mode", m.String())
		)
		network = m.Network(network)

		log.Info("dialing", "network", network, "address", address)

		conn, err := d.DialContext(ctx, network, address)
		if err != nil {
			return nil, err
		}

		log.Info("dialed", "local", conn.LocalAddr().String(), "remote", conn.RemoteAddr().String())

		return conn, nil
	}
}

// NewHTTPClient returns an *http.Client whose connections are forced
// to m's family. Everything else is inherited from http.DefaultTransport.
func NewHTTPClient(m Mode) *http.Client {
	var transport *http.Transport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		transport = t.Clone()
	} else {
		transport = &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          100,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ExpectContinueTimeout: time.Second,
		}
	}

	transport.DialContext = DialContextFunc(m)

	return &http.Client{Transport: transport}
}
