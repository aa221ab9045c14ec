// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/internal/httputil"
	"github.com/Ben-noncodingceo/graph-IBO-problem-maker/pkg/types"
)

// FetchError reports a non-success HTTP status from a page fetch.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: HTTP %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// FetchHTML performs a single GET and returns the page body. A non-2xx
// status yields a *FetchError. A response whose content type is not
// text/html yields an empty string and no error: that is the deliberate
// "nothing to extract" signal, distinct from a hard failure, and callers
// classify the two differently.
func FetchHTML(ctx context.Context, client *http.Client, url string, cfg types.HTTPConfig) (string, error) {
	resp, err := httputil.Get(ctx, client, url, cfg.UserAgent, 0)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return "", fmt.Errorf("dns lookup for %s: %w", url, err)
		}
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(ct), "text/html") {
		return "", nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: reading body: %w", url, err)
	}
	return string(body), nil
}
