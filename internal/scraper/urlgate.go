package scraper

import (
	"fmt"
	"net/url"
	"strings"
)

// Hosts we will never fetch, checked as exact match or prefix: loopback,
// RFC1918 ranges, and cloud metadata endpoints.
var blockedHostPrefixes = []string{
	"localhost", "127.0.0.1", "0.0.0.0", "::1",
	"169.254.169.254", "metadata.google.internal",
	"10.", "172.16.", "172.17.", "172.18.", "172.19.",
	"172.20.", "172.21.", "172.22.", "172.23.", "172.24.",
	"172.25.", "172.26.", "172.27.", "172.28.", "172.29.",
	"172.30.", "172.31.", "192.168.",
}

var allowedDomains = []string{"recordstoreday.com", "www.recordstoreday.com"}

// ValidateScrapeURL checks a candidate scrape URL before any network access
// happens: it must parse, be http(s), not target an internal network, and
// sit on the source-site allow-list. Pure predicate, no I/O.
func ValidateScrapeURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("%w: invalid URL format", ErrInvalidURL)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: only HTTP/HTTPS URLs are allowed", ErrInvalidURL)
	}

	hostname := strings.ToLower(parsed.Hostname())
	for _, prefix := range blockedHostPrefixes {
		if hostname == prefix || strings.HasPrefix(hostname, prefix) {
			return fmt.Errorf("%w: URLs targeting internal networks are not allowed", ErrInvalidURL)
		}
	}

	for _, domain := range allowedDomains {
		if hostname == domain {
			return nil
		}
	}
	return fmt.Errorf("%w: only these domains are allowed: %s",
		ErrInvalidURL, strings.Join(allowedDomains, ", "))
}
