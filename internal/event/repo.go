package event

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rsdhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const eventColumns = `event_id, year, season, name, release_date, release_count, created_at, updated_at`

func scanEvent(scan func(...any) error) (models.Event, error) {
	var e models.Event
	var releaseDate sql.NullString
	var created, updated time.Time

	if err := scan(
		&e.EventID, &e.Year, &e.Season, &e.Name,
		&releaseDate, &e.ReleaseCount, &created, &updated,
	); err != nil {
		return models.Event{}, err
	}
	e.ReleaseDate = releaseDate.String
	e.CreatedAt = created
	e.UpdatedAt = updated
	return e, nil
}

// List returns all events, newest first. Within a year "fall" sorts before
// "spring", which matches the calendar: Black Friday is the later drop.
func (r *Repo) List(ctx context.Context) ([]models.Event, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY year DESC, season ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []models.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Get(ctx context.Context, eventID string) (*models.Event, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+eventColumns+` FROM events WHERE event_id = ?
	`, eventID)

	e, err := scanEvent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &e, nil
}

// Delete removes an event and every release under it in one transaction.
// Events are never auto-deleted; this backs the explicit admin action only.
func (r *Repo) Delete(ctx context.Context, eventID string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin delete event: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM releases WHERE event_id = ?`, eventID); err != nil {
		return false, fmt.Errorf("delete event releases: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, eventID)
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	n, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit delete event: %w", err)
	}
	return n > 0, nil
}
