package scraper

import (
	"context"
	"database/sql"
	"fmt"

	"rsdhub/pkg/models"
)

// batchSize caps how many release upserts go into one transaction, matching
// the write-batch limit of the original hosted datastore.
const batchSize = 500

// SaveToDatabase upserts the event row (merge semantics: an existing event
// keeps its identity, the metadata and release count refresh) and then all
// releases, chunked into transactions of at most batchSize rows.
func SaveToDatabase(ctx context.Context, db *sql.DB, event models.Event, releases []models.Release) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO events (event_id, year, season, name, release_date, release_count)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(event_id) DO UPDATE SET
		  name = excluded.name,
		  release_date = excluded.release_date,
		  release_count = excluded.release_count,
		  updated_at = CURRENT_TIMESTAMP
	`, event.EventID, event.Year, event.Season, event.Name, event.ReleaseDate, event.ReleaseCount)
	if err != nil {
		return fmt.Errorf("upsert event %s: %w", event.EventID, err)
	}

	for start := 0; start < len(releases); start += batchSize {
		end := start + batchSize
		if end > len(releases) {
			end = len(releases)
		}
		if err := saveBatch(ctx, db, releases[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func saveBatch(ctx context.Context, db *sql.DB, releases []models.Release) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO releases (release_id, event_id, artist, title, label, format,
		                      release_type, quantity, details_url, image_url, description)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(release_id) DO UPDATE SET
		  artist = excluded.artist,
		  title = excluded.title,
		  label = excluded.label,
		  format = excluded.format,
		  release_type = excluded.release_type,
		  quantity = excluded.quantity,
		  details_url = excluded.details_url,
		  image_url = excluded.image_url,
		  description = excluded.description,
		  updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return fmt.Errorf("prepare stmt: %w", err)
	}
	defer stmt.Close()

	for _, rel := range releases {
		if _, err := stmt.ExecContext(
			ctx,
			rel.ReleaseID,
			rel.EventID,
			rel.Artist,
			rel.Title,
			rel.Label,
			rel.Format,
			rel.ReleaseType,
			rel.Quantity,
			rel.DetailsURL,
			rel.ImageURL,
			rel.Description,
		); err != nil {
			return fmt.Errorf("exec upsert for %s: %w", rel.ReleaseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
