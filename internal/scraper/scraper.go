package scraper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"rsdhub/internal/cleaner"
	"rsdhub/pkg/models"
)

// Source is implemented by each way of obtaining raw release rows for an
// event (scraped HTML page, pasted tab-separated text). Each source fetches
// its own input format and maps it into RawRelease.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) ([]models.RawRelease, error)
}

// ImportRequest describes one catalog import: where the data comes from and
// which event it belongs to.
type ImportRequest struct {
	URL         string `json:"url"`
	PasteData   string `json:"paste_data"`
	EventName   string `json:"event_name"`
	Year        int    `json:"year"`
	Season      string `json:"season"`
	ReleaseDate string `json:"release_date"`
}

type ImportResult struct {
	EventID      string `json:"event_id"`
	EventName    string `json:"event_name"`
	ReleaseCount int    `json:"release_count"`
}

func (r ImportRequest) validate() error {
	if r.EventName == "" || r.Year == 0 || r.Season == "" || r.ReleaseDate == "" {
		return errors.New("event_name, year, season, and release_date are required")
	}
	if !models.ValidSeason(r.Season) {
		return fmt.Errorf("season must be %q or %q", models.SeasonSpring, models.SeasonFall)
	}
	if r.URL == "" && r.PasteData == "" {
		return errors.New("either url or paste_data must be provided")
	}
	return nil
}

// Import runs one full catalog import: fetch raw rows, reconcile each into a
// clean release, and upsert the event plus its releases.
//
// When scraping the URL fails and paste data was also supplied, the paste
// path is used instead of failing the whole import. The site WAF-walls
// automated access often enough that this fallback is the normal admin
// workflow.
func Import(ctx context.Context, db *sql.DB, req ImportRequest) (*ImportResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	eventID := models.BuildEventID(req.Year, req.Season)

	raws, err := fetchRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	if len(raws) == 0 {
		return nil, ErrNoReleases
	}

	releases := make([]models.Release, 0, len(raws))
	for _, raw := range raws {
		releases = append(releases, reconcileRaw(eventID, raw))
	}

	event := models.Event{
		EventID:      eventID,
		Year:         req.Year,
		Season:       req.Season,
		Name:         req.EventName,
		ReleaseDate:  req.ReleaseDate,
		ReleaseCount: len(releases),
	}

	if err := SaveToDatabase(ctx, db, event, releases); err != nil {
		return nil, err
	}

	log.Printf("[scraper] imported %d releases for %s", len(releases), eventID)
	return &ImportResult{
		EventID:      eventID,
		EventName:    req.EventName,
		ReleaseCount: len(releases),
	}, nil
}

// fetchRaw tries each configured source in order: the scraped page first,
// then the pasted text. A later source only runs when the one before it
// failed, so pasted data acts as the fallback when the site blocks scraping.
// An empty row set from a working source is a valid result and does not
// trigger the next source.
func fetchRaw(ctx context.Context, req ImportRequest) ([]models.RawRelease, error) {
	var sources []Source
	if req.URL != "" {
		sources = append(sources, NewHTMLSource(req.URL))
	}
	if req.PasteData != "" {
		sources = append(sources, NewPasteSource(req.PasteData))
	}

	var lastErr error
	for _, src := range sources {
		raws, err := src.FetchAll(ctx)
		if err != nil {
			lastErr = err
			log.Printf("[scraper] source %s failed: %v", src.Name(), err)
			continue
		}
		return raws, nil
	}
	return nil, lastErr
}

// reconcileRaw cleans one raw row and derives its deterministic ID. The ID
// comes from the reconciled fields, so re-importing the same catalog hits
// the same rows again (upsert, not duplicate).
func reconcileRaw(eventID string, raw models.RawRelease) models.Release {
	rel := cleaner.Reconcile(models.Release{
		EventID:     eventID,
		Title:       raw.Title,
		Artist:      raw.Artist,
		Label:       raw.Label,
		Format:      raw.Format,
		ReleaseType: raw.ReleaseType,
		Quantity:    raw.Quantity,
		DetailsURL:  raw.DetailsURL,
		ImageURL:    raw.ImageURL,
		Description: raw.Description,
	})
	rel.ReleaseID = models.BuildReleaseID(eventID, rel.Artist, rel.Title, rel.Format)
	return rel
}
