// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the transport capability shared by the provider
// clients: perform a GET, return the body, report any failure as a single
// error. Connection problems and non-200 statuses are deliberately not
// distinguished; the provider layer collapses both into its "not found"
// forms.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// GetBody performs a GET request against url and returns the raw response
// body. The User-Agent header is set when userAgent is non-empty. Any
// transport failure, context cancellation, or non-200 status is returned
// as an error with a nil body.
func GetBody(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return body, nil
}

// GetText is GetBody with the body decoded as text. XML stages consume the
// byte form, JSON and plain-text stages the string form.
func GetText(ctx context.Context, client *http.Client, url, userAgent string) (string, error) {
	body, err := GetBody(ctx, client, url, userAgent)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
