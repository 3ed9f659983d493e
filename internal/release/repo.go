package release

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

type ListQuery struct {
	EventID string
	Q       string // keyword search in title/artist/label
	Format  string
	Limit   int
	Offset  int
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

const releaseColumns = `release_id, event_id, artist, title, label, format,
	release_type, quantity, details_url, image_url, description, created_at, updated_at`

func scanRelease(scan func(...any) error) (models.Release, error) {
	var (
		rel         models.Release
		label       sql.NullString
		format      sql.NullString
		releaseType sql.NullString
		quantity    sql.NullInt64
		detailsURL  sql.NullString
		imageURL    sql.NullString
		description sql.NullString
		created     time.Time
		updated     time.Time
	)

	if err := scan(
		&rel.ReleaseID, &rel.EventID, &rel.Artist, &rel.Title, &label, &format,
		&releaseType, &quantity, &detailsURL, &imageURL, &description, &created, &updated,
	); err != nil {
		return models.Release{}, err
	}

	rel.Label = label.String
	rel.Format = format.String
	rel.ReleaseType = releaseType.String
	if quantity.Valid {
		q := int(quantity.Int64)
		rel.Quantity = &q
	}
	if detailsURL.Valid {
		rel.DetailsURL = &detailsURL.String
	}
	if imageURL.Valid {
		rel.ImageURL = &imageURL.String
	}
	if description.Valid {
		rel.Description = &description.String
	}
	rel.CreatedAt = created
	rel.UpdatedAt = updated
	return rel, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Release, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+releaseColumns+` FROM releases WHERE release_id = ?
	`, id)

	rel, err := scanRelease(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan getByID: %w", err)
	}
	return &rel, nil
}

func (r *Repo) Count(ctx context.Context, q ListQuery) (int, error) {
	sqlStr, args := buildListSQL(q, true)
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var total int
	if err := row.Scan(&total); err != nil {
		return 0, fmt.Errorf("count scan: %w", err)
	}
	return total, nil
}

func (r *Repo) List(ctx context.Context, q ListQuery) ([]models.Release, error) {
	sqlStr, args := buildListSQL(q, false)

	rows, err := r.DB.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list query: %w", err)
	}
	defer rows.Close()

	out := make([]models.Release, 0, q.Limit)
	for rows.Next() {
		rel, err := scanRelease(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list scan: %w", err)
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

// buildListSQL builds either COUNT(*) or the SELECT list.
func buildListSQL(q ListQuery, countOnly bool) (string, []any) {
	baseSelect := `SELECT ` + releaseColumns + ` FROM releases`
	if countOnly {
		baseSelect = `SELECT COUNT(*) FROM releases`
	}

	var where []string
	var args []any

	if strings.TrimSpace(q.EventID) != "" {
		where = append(where, "event_id = ?")
		args = append(args, strings.TrimSpace(q.EventID))
	}

	if strings.TrimSpace(q.Q) != "" {
		where = append(where, "(LOWER(title) LIKE ? OR LOWER(artist) LIKE ? OR LOWER(label) LIKE ?)")
		kw := "%" + strings.ToLower(strings.TrimSpace(q.Q)) + "%"
		args = append(args, kw, kw, kw)
	}

	if strings.TrimSpace(q.Format) != "" {
		where = append(where, "LOWER(format) = ?")
		args = append(args, strings.ToLower(strings.TrimSpace(q.Format)))
	}

	sqlStr := baseSelect
	if len(where) > 0 {
		sqlStr += " WHERE " + strings.Join(where, " AND ")
	}

	if !countOnly {
		sqlStr += " ORDER BY artist ASC, title ASC"
		sqlStr += " LIMIT ? OFFSET ?"
		limit := q.Limit
		if limit <= 0 || limit > 200 {
			limit = 50
		}
		offset := q.Offset
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}

	return sqlStr, args
}
