package scraper

import (
	"errors"
	"testing"
)

func TestValidateScrapeURLAllowed(t *testing.T) {
	for _, u := range []string{
		"https://recordstoreday.com/SpecialReleases",
		"https://www.recordstoreday.com/SpecialReleases",
		"http://recordstoreday.com/",
	} {
		if err := ValidateScrapeURL(u); err != nil {
			t.Errorf("ValidateScrapeURL(%q) = %v, want nil", u, err)
		}
	}
}

func TestValidateScrapeURLRejected(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"not a url", "::::not a url"},
		{"no host", "https://"},
		{"bad scheme", "ftp://recordstoreday.com/list"},
		{"file scheme", "file:///etc/passwd"},
		{"localhost", "http://localhost/admin"},
		{"loopback", "http://127.0.0.1:8080/"},
		{"ipv6 loopback", "http://[::1]/"},
		{"metadata ip", "http://169.254.169.254/latest/meta-data/"},
		{"gcp metadata", "http://metadata.google.internal/computeMetadata/"},
		{"rfc1918 10", "http://10.0.0.5/"},
		{"rfc1918 172", "http://172.16.4.2/"},
		{"rfc1918 192", "http://192.168.1.1/"},
		{"unlisted domain", "https://example.com/releases"},
		{"lookalike domain", "https://recordstoreday.com.evil.com/"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateScrapeURL(c.url)
			if err == nil {
				t.Fatalf("ValidateScrapeURL(%q) = nil, want error", c.url)
			}
			if !errors.Is(err, ErrInvalidURL) {
				t.Errorf("error %v is not ErrInvalidURL", err)
			}
		})
	}
}
