package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type User struct {
	ID             string
	Username       string
	Email          string
	PasswordHash   string
	AvatarID       string
	ShareID        *string
	SharingEnabled bool
	TokenVersion   int
	CreatedAt      time.Time
}

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) CreateUser(ctx context.Context, u User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, avatar_id)
		VALUES (?, ?, ?, ?, ?)
	`, u.ID, u.Username, u.Email, u.PasswordHash, u.AvatarID)

	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

const userColumns = `id, username, email, password_hash, avatar_id, share_id, sharing_enabled, token_version, created_at`

func (r *Repo) scanUser(row *sql.Row) (*User, error) {
	var u User
	var shareID sql.NullString
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.AvatarID, &shareID, &u.SharingEnabled, &u.TokenVersion, &u.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if shareID.Valid {
		u.ShareID = &shareID.String
	}
	return &u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE LOWER(email) = ?
	`, email)

	u, err := r.scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get by email: %w", err)
	}
	return u, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = ?
	`, strings.TrimSpace(username))

	u, err := r.scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get by username: %w", err)
	}
	return u, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*User, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = ?
	`, id)

	u, err := r.scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	return u, nil
}

func (r *Repo) GetTokenVersion(ctx context.Context, id string) (int, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT token_version FROM users WHERE id = ?
	`, id)

	var version int
	if err := row.Scan(&version); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("get token version: %w", err)
	}
	return version, nil
}

// SetSharing stamps (or clears) the sharing fields on a user row. The share
// record itself lives in the shares table; this is just the back-pointer.
func (r *Repo) SetSharing(ctx context.Context, uid string, shareID *string, enabled bool) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET share_id = ?, sharing_enabled = ? WHERE id = ?
	`, shareID, enabled, uid)
	if err != nil {
		return fmt.Errorf("set sharing: %w", err)
	}
	return nil
}

// IsAdmin checks the admins table by account email. Import and event
// deletion are gated on this.
func (r *Repo) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	row := r.DB.QueryRowContext(ctx, `
		SELECT 1 FROM admins WHERE email = ?
	`, strings.TrimSpace(strings.ToLower(email)))

	var one int
	if err := row.Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("admin check: %w", err)
	}
	return true, nil
}

func (r *Repo) UpdatePasswordAndBumpTokenVersion(ctx context.Context, id string, passwordHash string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users
		SET password_hash = ?, token_version = token_version + 1
		WHERE id = ?
	`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update password: user not found")
	}
	return nil
}

func (r *Repo) BumpTokenVersion(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE users SET token_version = token_version + 1 WHERE id = ?
	`, id)
	if err != nil {
		return fmt.Errorf("bump token version: %w", err)
	}
	return nil
}
