package database

import (
	"database/sql"
	"fmt"
	"os"
)

// Migrate applies the schema. The schema file only uses CREATE ... IF NOT
// EXISTS, so running it on every startup is safe.
func Migrate(db *sql.DB) error {
	path := os.Getenv("RSDHUB_SCHEMA_PATH")
	if path == "" {
		path = "docs/schema.sql"
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", path, err)
	}

	if _, err := db.Exec(string(b)); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
