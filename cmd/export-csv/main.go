package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"rsdhub/pkg/database"
)

func main() {
	var (
		releasesOut = flag.String("releases", "data/releases.csv", "output CSV path for releases")
		wantsOut    = flag.String("wants", "data/wants.csv", "output CSV path for wants")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	if err := exportReleases(ctx, db, *releasesOut); err != nil {
		log.Fatalf("export releases failed: %v", err)
	}
	if err := exportWants(ctx, db, *wantsOut); err != nil {
		log.Fatalf("export wants failed: %v", err)
	}

	log.Printf("exported releases to %s and wants to %s", *releasesOut, *wantsOut)
}

func exportReleases(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"release_id", "event_id", "artist", "title", "label", "format", "release_type", "quantity", "details_url"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT release_id, event_id, artist, title, label, format, release_type, quantity, details_url
        FROM releases
        ORDER BY event_id, artist, title
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			releaseID   string
			eventID     string
			artist      string
			title       string
			label       sql.NullString
			format      sql.NullString
			releaseType sql.NullString
			quantity    sql.NullInt64
			detailsURL  sql.NullString
		)

		if err := rows.Scan(&releaseID, &eventID, &artist, &title, &label, &format, &releaseType, &quantity, &detailsURL); err != nil {
			return err
		}

		qty := ""
		if quantity.Valid {
			qty = strconv.FormatInt(quantity.Int64, 10)
		}

		if err := w.Write([]string{
			releaseID,
			eventID,
			artist,
			title,
			label.String,
			format.String,
			releaseType.String,
			qty,
			detailsURL.String,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}

func exportWants(ctx context.Context, db *sql.DB, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"user_id", "want_id", "event_id", "artist", "title", "status", "acquired_at", "updated_at"}); err != nil {
		return err
	}

	rows, err := db.QueryContext(ctx, `
        SELECT user_id, want_id, event_id, artist, title, status, acquired_at, updated_at
        FROM wants
        ORDER BY updated_at DESC
    `)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			userID     string
			wantID     string
			eventID    string
			artist     string
			title      string
			status     string
			acquiredAt sql.NullTime
			updatedAt  sql.NullTime
		)

		if err := rows.Scan(&userID, &wantID, &eventID, &artist, &title, &status, &acquiredAt, &updatedAt); err != nil {
			return err
		}

		acquired := ""
		if acquiredAt.Valid {
			acquired = acquiredAt.Time.Format(time.RFC3339)
		}
		updated := ""
		if updatedAt.Valid {
			updated = updatedAt.Time.Format(time.RFC3339)
		}

		if err := w.Write([]string{
			userID,
			wantID,
			eventID,
			artist,
			title,
			status,
			acquired,
			updated,
		}); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	w.Flush()
	return w.Error()
}
