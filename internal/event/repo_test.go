package event

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	schema, err := os.ReadFile("../../docs/schema.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)

	return db
}

func seedEvent(t *testing.T, db *sql.DB, eventID string, year int, season string) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO events (event_id, year, season, name, release_date, release_count)
		VALUES (?, ?, ?, ?, '2026-04-18', 0)
	`, eventID, year, season, "Event "+eventID)
	require.NoError(t, err)
}

func TestListNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewRepo(db)

	seedEvent(t, db, "rsd_2025_spring", 2025, "spring")
	seedEvent(t, db, "rsd_2026_fall", 2026, "fall")
	seedEvent(t, db, "rsd_2026_spring", 2026, "spring")

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	require.Equal(t, "rsd_2026_fall", events[0].EventID)
	require.Equal(t, "rsd_2026_spring", events[1].EventID)
	require.Equal(t, "rsd_2025_spring", events[2].EventID)
}

func TestGetMissingEvent(t *testing.T) {
	db := testDB(t)
	repo := NewRepo(db)

	e, err := repo.Get(context.Background(), "rsd_1999_spring")
	require.NoError(t, err)
	require.Nil(t, e)
}

func TestDeleteRemovesReleases(t *testing.T) {
	db := testDB(t)
	repo := NewRepo(db)

	seedEvent(t, db, "rsd_2026_spring", 2026, "spring")
	_, err := db.Exec(`
		INSERT INTO releases (release_id, event_id, artist, title)
		VALUES ('rsd_2026_spring_alabama-shakes-boys-girls-lp', 'rsd_2026_spring', 'Alabama Shakes', 'Boys & Girls')
	`)
	require.NoError(t, err)

	ok, err := repo.Delete(context.Background(), "rsd_2026_spring")
	require.NoError(t, err)
	require.True(t, ok)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM releases`).Scan(&count))
	require.Equal(t, 0, count)

	ok, err = repo.Delete(context.Background(), "rsd_2026_spring")
	require.NoError(t, err)
	require.False(t, ok)
}
