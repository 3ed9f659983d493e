package scraper

import "errors"

var (
	// ErrInvalidURL covers malformed or disallowed scrape URLs.
	ErrInvalidURL = errors.New("invalid scrape url")

	// ErrBlocked means the site served a bot-wall instead of content.
	// Distinct from an empty table, which is a valid non-error result.
	ErrBlocked = errors.New("site blocked automated access")

	// ErrUnavailable covers fetch-level failures (non-2xx, network).
	ErrUnavailable = errors.New("source unavailable")

	// ErrNoReleases means the input parsed fine but contained no rows.
	ErrNoReleases = errors.New("no releases found in the provided data")
)
