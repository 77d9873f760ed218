// Package utils provides common utility functions.
package utils

import "net/http"

// DefaultUserAgent identifies the crawler when no user agent is configured.
const DefaultUserAgent = "casecrawler/1.0"

// HTTPHelper provides HTTP utility functions.
type HTTPHelper struct {
	userAgent string
}

// NewHTTPHelper creates a new HTTP helper.
func NewHTTPHelper(userAgent string) *HTTPHelper {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPHelper{userAgent: userAgent}
}

// BuildHeaders creates HTTP headers with defaults. Custom headers replace defaults.
func (h *HTTPHelper) BuildHeaders(customHeaders map[string]string) http.Header {
	headers := http.Header{}

	headers.Set("User-Agent", h.userAgent)
	headers.Set("Accept", "application/json, text/html")

	for key, value := range customHeaders {
		headers.Set(key, value)
	}

	return headers
}
