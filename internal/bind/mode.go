package bind

import (
	"fmt"
	"net"
)

// Mode is the IP family that outbound connections are forced to use.
type Mode int

const (
	// ModeDefault lets the operating system choose the family.
	ModeDefault Mode = iota
	// ModeIPv4 forces IPv4 by binding to the IPv4 wildcard address.
	ModeIPv4
	// ModeIPv6 forces IPv6 by binding to the IPv6 wildcard address.
	ModeIPv6
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeIPv4:
		return "ipv4"
	case ModeIPv6:
		return "ipv6"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// LocalAddr returns the wildcard TCP address of m's family,
// or nil for ModeDefault.
func (m Mode) LocalAddr() *net.TCPAddr {
	switch m {
	case ModeIPv4:
		return &net.TCPAddr{IP: net.IPv4zero}
	case ModeIPv6:
		return &net.TCPAddr{IP: net.IPv6zero}
	}

	return nil
}

// Network narrows a "tcp" dial network to m's family.
// Any other network is returned as-is.
func (m Mode) Network(network string) string {
	if network != "tcp" {
		return network
	}

	switch m {
	case ModeIPv4:
		return "tcp4"
	case ModeIPv6:
		return "tcp6"
	}

	return network
}
