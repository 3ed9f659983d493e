package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"rsdhub/pkg/models"
)

// HTMLSource scrapes a release-list page from the source site.
type HTMLSource struct {
	URL    string
	Client *http.Client
}

func NewHTMLSource(url string) *HTMLSource {
	return &HTMLSource{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *HTMLSource) Name() string { return "html" }

// FetchAll validates the URL, fetches the page with browser-like headers
// (plain Go-client requests get WAF-walled immediately), and parses the
// release table.
func (s *HTMLSource) FetchAll(ctx context.Context) ([]models.RawRelease, error) {
	if err := ValidateScrapeURL(s.URL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept",
		"text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: fetch returned status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	return ParseReleaseTable(string(body))
}
