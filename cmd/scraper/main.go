package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"rsdhub/internal/scraper"
	"rsdhub/pkg/database"
	"rsdhub/pkg/utils"
)

func main() {
	var (
		url     = flag.String("url", "", "release list page to scrape")
		paste   = flag.String("paste", "", "path to a tab-separated paste dump (use instead of -url, or as fallback)")
		name    = flag.String("name", "", "event name, e.g. \"RSD 2026\"")
		year    = flag.Int("year", 0, "event year")
		season  = flag.String("season", "", "spring or fall")
		date    = flag.String("date", "", "event release date, YYYY-MM-DD")
		timeout = flag.Duration("timeout", 60*time.Second, "overall import timeout")
	)
	flag.Parse()

	utils.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	req := scraper.ImportRequest{
		URL:         *url,
		EventName:   *name,
		Year:        *year,
		Season:      *season,
		ReleaseDate: *date,
	}
	if *paste != "" {
		raw, err := os.ReadFile(*paste)
		if err != nil {
			log.Fatalf("read paste file: %v", err)
		}
		req.PasteData = string(raw)
	}

	result, err := scraper.Import(ctx, db, req)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	log.Printf("imported %d releases into %s (%s)", result.ReleaseCount, result.EventID, result.EventName)
}
