package extiptrace

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/frantjc/pubip/internal/logutil"
)

// Fetch GETs url with client and returns the response body. The whole
// exchange, including reading the body, must finish within timeout.
// Any failure is returned as a *TransportError.
func Fetch(ctx context.Context, client *http.Client, url string, timeout time.Duration) (string, error) {
	var (
		log = logutil.SloggerFrom(ctx).With("url", url, "timeout", timeout)
	)

	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &TransportError{err}
	}

	log.Debug("requesting trace")

	res, err := client.Do(req)
	if err != nil {
		return "", &TransportError{err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &TransportError{err}
	}

	log.Debug("received trace", "status", res.StatusCode, "bytes", len(body))

	return string(body), nil
}
