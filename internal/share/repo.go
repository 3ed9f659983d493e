package share

import (
	"context"
	"database/sql"
	"fmt"

	"rsdhub/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, s models.ShareInfo) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO shares (share_id, uid, owner_name, list_name)
		VALUES (?, ?, ?, ?)
	`, s.ShareID, s.UID, s.OwnerName, s.ListName)
	if err != nil {
		return fmt.Errorf("create share: %w", err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, shareID string) (*models.ShareInfo, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT share_id, uid, owner_name, list_name, created_at, updated_at
		FROM shares WHERE share_id = ?
	`, shareID)

	var s models.ShareInfo
	err := row.Scan(&s.ShareID, &s.UID, &s.OwnerName, &s.ListName, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan share: %w", err)
	}
	return &s, nil
}

func (r *Repo) GetByOwner(ctx context.Context, uid string) (*models.ShareInfo, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT share_id, uid, owner_name, list_name, created_at, updated_at
		FROM shares WHERE uid = ?
	`, uid)

	var s models.ShareInfo
	err := row.Scan(&s.ShareID, &s.UID, &s.OwnerName, &s.ListName, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan share: %w", err)
	}
	return &s, nil
}

func (r *Repo) UpdateNames(ctx context.Context, shareID, ownerName, listName string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE shares SET owner_name = ?, list_name = ?, updated_at = CURRENT_TIMESTAMP
		WHERE share_id = ?
	`, ownerName, listName, shareID)
	if err != nil {
		return false, fmt.Errorf("update share: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) DeleteByOwner(ctx context.Context, uid string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM shares WHERE uid = ?`, uid)
	if err != nil {
		return fmt.Errorf("delete share: %w", err)
	}
	return nil
}
