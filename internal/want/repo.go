package want

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"rsdhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const wantColumns = `want_id, event_id, release_id, artist, title, image_url,
	format, release_type, status, added_at, acquired_at, updated_at`

func scanWant(scan func(...any) error) (models.Want, error) {
	var (
		w           models.Want
		imageURL    sql.NullString
		format      sql.NullString
		releaseType sql.NullString
		acquiredAt  sql.NullTime
	)

	if err := scan(
		&w.WantID, &w.EventID, &w.ReleaseID, &w.Artist, &w.Title, &imageURL,
		&format, &releaseType, &w.Status, &w.AddedAt, &acquiredAt, &w.UpdatedAt,
	); err != nil {
		return models.Want{}, err
	}

	if imageURL.Valid {
		w.ImageURL = &imageURL.String
	}
	w.Format = format.String
	w.ReleaseType = releaseType.String
	if acquiredAt.Valid {
		t := acquiredAt.Time
		w.AcquiredAt = &t
	}
	return w, nil
}

// Upsert adds the want, or refreshes the snapshot fields if the user
// already holds it. Status and acquired_at survive a re-add.
func (r *Repo) Upsert(ctx context.Context, userID string, w models.Want) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO wants (user_id, want_id, event_id, release_id, artist, title,
			image_url, format, release_type, status, added_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, want_id) DO UPDATE SET
			artist       = excluded.artist,
			title        = excluded.title,
			image_url    = excluded.image_url,
			format       = excluded.format,
			release_type = excluded.release_type,
			updated_at   = CURRENT_TIMESTAMP
	`, userID, w.WantID, w.EventID, w.ReleaseID, w.Artist, w.Title,
		w.ImageURL, nullIfEmpty(w.Format), nullIfEmpty(w.ReleaseType), w.Status)
	if err != nil {
		return fmt.Errorf("upsert want: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID, wantID string) (*models.Want, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+wantColumns+` FROM wants WHERE user_id = ? AND want_id = ?
	`, userID, wantID)

	w, err := scanWant(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan want: %w", err)
	}
	return &w, nil
}

// List returns the user's wants, optionally narrowed to one event.
func (r *Repo) List(ctx context.Context, userID, eventID string) ([]models.Want, error) {
	sqlStr := `SELECT ` + wantColumns + ` FROM wants WHERE user_id = ?`
	args := []any{userID}
	if strings.TrimSpace(eventID) != "" {
		sqlStr += " AND event_id = ?"
		args = append(args, strings.TrimSpace(eventID))
	}
	sqlStr += " ORDER BY added_at DESC, want_id ASC"

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list wants: %w", err)
	}
	defer rows.Close()

	var out []models.Want
	for rows.Next() {
		w, err := scanWant(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// UpdateStatus flips the want between WANTED and ACQUIRED. Moving to
// ACQUIRED stamps acquired_at; moving back clears it.
func (r *Repo) UpdateStatus(ctx context.Context, userID, wantID, status string) (*models.Want, error) {
	var acquiredAt any
	if status == models.WantStatusAcquired {
		acquiredAt = time.Now().UTC()
	}

	res, err := r.DB.ExecContext(ctx, `
		UPDATE wants SET status = ?, acquired_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE user_id = ? AND want_id = ?
	`, status, acquiredAt, userID, wantID)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	return r.Get(ctx, userID, wantID)
}

func (r *Repo) Delete(ctx context.Context, userID, wantID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM wants WHERE user_id = ? AND want_id = ?
	`, userID, wantID)
	if err != nil {
		return false, fmt.Errorf("delete want: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func nullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
