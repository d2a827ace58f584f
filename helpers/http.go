package helpers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"golang.org/x/net/html/charset"

	"stockwatch/logger"
	apperrors "stockwatch/pkg/errors"
)

// Fixed browser-emulating headers. BestBuy serves the full product markup
// only to requests that look like a desktop browser.
const (
	userAgent      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_11_6) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/11.1.2 Safari/605.1.15"
	acceptLanguage = "en,en-US;q=0,5"
	accept         = "text/html,application/xhtml+xml,application/xml;q=0.9,/;q=0.8"
)

// acceptedStatusCodes are the response codes treated as a successful fetch.
var acceptedStatusCodes = []int{
	http.StatusOK,
	http.StatusCreated,
	http.StatusNonAuthoritativeInfo,
}

// HTTP client with timeout
var client = &http.Client{
	Timeout: 10 * time.Second,
}

// SetTimeout adjusts the shared HTTP client timeout.
func SetTimeout(d time.Duration) {
	client.Timeout = d
}

// FetchPage sends a browser-emulating GET request to the product page,
// converts the response body to UTF-8 (if needed), and returns it as an
// io.Reader. Any status outside the accepted set fails the fetch.
func FetchPage(ctx context.Context, url string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.NewFetch(url, "failed to create request", err)
	}

	// Set browser-like headers
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Accept", accept)

	resp, err := client.Do(req)
	if err != nil {
		return nil, apperrors.NewFetch(url, "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	// Record status code, reason phrase and the final URL after redirects
	logger.ForFetcher().Debug().
		Int("status_code", resp.StatusCode).
		Str("reason", http.StatusText(resp.StatusCode)).
		Str("url", resp.Request.URL.String()).
		Msg("Fetched product page")

	if !slices.Contains(acceptedStatusCodes, resp.StatusCode) {
		return nil, apperrors.NewFetch(url, fmt.Sprintf("got unexpected status code: %d", resp.StatusCode), nil)
	}

	// Read the entire response body
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewFetch(url, "failed to read response body", err)
	}

	// Determine the encoding from Content-Type header and body content
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, resp.Header.Get("Content-Type"))

	// If already UTF-8, return as is
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	// Convert to UTF-8 if necessary
	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, apperrors.NewFetch(url, "failed to read converted UTF-8 body", err)
	}

	return &buf, nil
}
