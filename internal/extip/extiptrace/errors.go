package extiptrace

import (
	"errors"
	"fmt"
)

var (
	// ErrNoLineStartsWithIP is returned when no line of
	// a trace response has the "ip" key.
	ErrNoLineStartsWithIP = errors.New("no line starts with ip")
	// ErrIPLineFormatChanged is returned when the "ip" line
	// of a trace response is not of the form "ip=<address>".
	ErrIPLineFormatChanged = errors.New("ip line format changed")
)

// TransportError is returned when the request for a trace
// response fails for any reason, including a timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "web request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a trace response cannot be parsed.
// Err is ErrNoLineStartsWithIP, ErrIPLineFormatChanged or an *AddrParseError.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "parsing failed: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AddrParseError is returned when the value of the "ip"
// line of a trace response is not an IP address.
type AddrParseError struct {
	Addr string
	Err  error
}

func (e *AddrParseError) Error() string {
	return fmt.Sprintf("failed to parse ip address %q: %s", e.Addr, e.Err)
}

func (e *AddrParseError) Unwrap() error {
	return e.Err
}
