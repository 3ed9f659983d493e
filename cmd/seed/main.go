package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"rsdhub/internal/scraper"
	"rsdhub/pkg/database"
	"rsdhub/pkg/models"
)

// seedFile is one event's worth of catalog data, stored as JSON under the
// data directory.
type seedFile struct {
	Event    models.Event     `json:"event"`
	Releases []models.Release `json:"releases"`
}

func main() {
	dataDir := flag.String("data", "data/rsd", "directory of event JSON files")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(*dataDir, "*.json"))
	if err != nil {
		log.Fatalf("list data dir: %v", err)
	}
	if len(files) == 0 {
		log.Fatalf("no JSON files under %s", *dataDir)
	}

	log.Printf("seeding %d file(s)", len(files))
	for _, path := range files {
		n, err := seedFromFile(ctx, db, path)
		if err != nil {
			log.Fatalf("seed %s: %v", path, err)
		}
		log.Printf("%s: %d releases", filepath.Base(path), n)
	}
	log.Println("done")
}

func seedFromFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, fmt.Errorf("parse json: %w", err)
	}

	if data.Event.EventID == "" {
		return 0, fmt.Errorf("missing event.event_id")
	}
	if !models.ValidSeason(data.Event.Season) {
		return 0, fmt.Errorf("bad season %q", data.Event.Season)
	}

	for i := range data.Releases {
		if data.Releases[i].EventID == "" {
			data.Releases[i].EventID = data.Event.EventID
		}
		if data.Releases[i].ReleaseID == "" {
			data.Releases[i].ReleaseID = models.BuildReleaseID(
				data.Event.EventID,
				data.Releases[i].Artist,
				data.Releases[i].Title,
				data.Releases[i].Format,
			)
		}
	}

	if data.Event.ReleaseCount == 0 {
		data.Event.ReleaseCount = len(data.Releases)
	}

	if err := scraper.SaveToDatabase(ctx, db, data.Event, data.Releases); err != nil {
		return 0, err
	}
	return len(data.Releases), nil
}
