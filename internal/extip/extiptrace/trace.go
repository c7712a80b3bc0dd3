package extiptrace

import (
	"fmt"
	"net/netip"
	"strings"
)

const (
	// CloudflareTraceURL is the URL of Cloudflare's CDN trace endpoint.
	CloudflareTraceURL = "https://cloudflare.com/cdn-cgi/trace"

	ipKey = "ip"
)

// ParseTrace extracts the client IP address from a trace response,
// a series of "key=value" lines. The first line that starts with "ip"
// is used, and its value is everything between the first and second "=".
func ParseTrace(body string) (netip.Addr, error) {
	line, ok := ipLine(body)
	if !ok {
		return netip.Addr{}, &ParseError{ErrNoLineStartsWithIP}
	}

	fields := strings.Split(line, "=")
	if len(fields) < 2 {
		return netip.Addr{}, &ParseError{ErrIPLineFormatChanged}
	}

	addr, err := netip.ParseAddr(fields[1])
	if err != nil {
		return netip.Addr{}, &ParseError{&AddrParseError{Addr: fields[1], Err: err}}
	}

	if addr.Zone() != "" {
		return netip.Addr{}, &ParseError{&AddrParseError{
			Addr: fields[1],
			Err:  fmt.Errorf("unexpected zone %q", addr.Zone()),
		}}
	}

	return addr, nil
}

func ipLine(body string) (string, bool) {
	for line := range strings.Lines(body) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.HasPrefix(line, ipKey) {
			return line, true
		}
	}

	return "", false
}
