package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pulseboard/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of the Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`

	selectUserByIDSQL = `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`

	selectUserByEmailOrUsernameSQL = `SELECT id, username, email, password_hash, created_at FROM users WHERE email = ? OR username = ?`

	countUsersByEmailOrUsernameSQL = `SELECT COUNT(1) FROM users WHERE email = ? OR username = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", username, err)
	}
	return int(lastID), nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id %d", id))
}

// FindByEmailOrUsername fetches the user whose email or username matches.
// Emails are stored lowercase, so callers lowercase the email argument for a
// case-insensitive match; the username match is exact. Returns (nil, nil) if
// not found.
func (r *UserSQLite) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	row := r.db.QueryRowContext(ctx, selectUserByEmailOrUsernameSQL, email, username)
	return r.scanOne(row, fmt.Sprintf("identifier %q", username))
}

// ExistsByEmailOrUsername reports whether any user already holds the email or
// the username.
func (r *UserSQLite) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countUsersByEmailOrUsernameSQL, email, username).Scan(&n); err != nil {
		return false, fmt.Errorf("count users by email/username: %w", err)
	}
	return n > 0, nil
}

func (r *UserSQLite) scanOne(row *sql.Row, what string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by %s: %w", what, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
