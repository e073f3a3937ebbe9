package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pulseboard/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite { return &PostSQLite{db: db} }

var _ Posts = (*PostSQLite)(nil)

const (
	insertPostSQL = `
		INSERT INTO posts (id, user_id, text, anonymous, sentiment, is_toxic, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectPostByIDSQL = `
		SELECT id, user_id, text, anonymous, sentiment, is_toxic, tags, created_at, updated_at
		FROM posts WHERE id = ?
	`

	selectRecentPostsSQL = `
		SELECT p.id, p.user_id, p.text, p.anonymous, p.sentiment, p.is_toxic, p.tags,
		       p.created_at, p.updated_at, u.username
		FROM posts p LEFT JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC LIMIT ?
	`

	selectPostsByUserSQL = `
		SELECT id, user_id, text, anonymous, sentiment, is_toxic, tags, created_at, updated_at
		FROM posts WHERE user_id = ? ORDER BY created_at DESC
	`

	updatePostSQL = `
		UPDATE posts SET text=?, anonymous=?, sentiment=?, is_toxic=?, tags=?, updated_at=?
		WHERE id=?
	`

	deletePostSQL = `DELETE FROM posts WHERE id = ?`
)

// marshalTags converts the tag slice to a JSON string for the TEXT column.
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// unmarshalTags parses the TEXT column back into a slice.
func unmarshalTags(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(s), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// Create inserts a new post. If ID or CreatedAt are empty, they're set.
func (r *PostSQLite) Create(ctx context.Context, p models.Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	} else {
		p.CreatedAt = p.CreatedAt.UTC()
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = p.CreatedAt
	} else {
		p.UpdatedAt = p.UpdatedAt.UTC()
	}

	tagsJSON, err := marshalTags(p.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags for post %q: %w", p.ID, err)
	}

	_, err = r.db.ExecContext(ctx, insertPostSQL,
		p.ID, p.UserID, p.Text, p.Anonymous, p.Sentiment, p.IsToxic, tagsJSON, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

// GetByID fetches a single post. Returns (nil, nil) if the id is unknown.
func (r *PostSQLite) GetByID(ctx context.Context, id string) (*models.Post, error) {
	row := r.db.QueryRowContext(ctx, selectPostByIDSQL, id)

	var p models.Post
	var tagsJSON string
	err := row.Scan(&p.ID, &p.UserID, &p.Text, &p.Anonymous, &p.Sentiment, &p.IsToxic, &tagsJSON, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %q: %w", id, err)
	}
	if p.Tags, err = unmarshalTags(tagsJSON); err != nil {
		return nil, fmt.Errorf("unmarshal tags for post %q: %w", id, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return &p, nil
}

// ListRecent returns up to limit posts, newest first, each joined with the
// owner's username (empty when the owner row is gone).
func (r *PostSQLite) ListRecent(ctx context.Context, limit int) ([]FeedPost, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentPostsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select recent posts: %w", err)
	}
	defer rows.Close()

	out := make([]FeedPost, 0, limit)
	for rows.Next() {
		var fp FeedPost
		var tagsJSON string
		var username sql.NullString
		if err := rows.Scan(&fp.ID, &fp.UserID, &fp.Text, &fp.Anonymous, &fp.Sentiment, &fp.IsToxic,
			&tagsJSON, &fp.CreatedAt, &fp.UpdatedAt, &username); err != nil {
			return nil, fmt.Errorf("scan recent post: %w", err)
		}
		if fp.Tags, err = unmarshalTags(tagsJSON); err != nil {
			return nil, fmt.Errorf("unmarshal tags for post %q: %w", fp.ID, err)
		}
		fp.CreatedAt = fp.CreatedAt.UTC()
		fp.UpdatedAt = fp.UpdatedAt.UTC()
		fp.AuthorUsername = username.String
		out = append(out, fp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent posts: %w", err)
	}
	return out, nil
}

// ListByUser returns all posts owned by userID, newest first.
func (r *PostSQLite) ListByUser(ctx context.Context, userID int) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectPostsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select posts for user %d: %w", userID, err)
	}
	defer rows.Close()

	var out []models.Post
	for rows.Next() {
		var p models.Post
		var tagsJSON string
		if err := rows.Scan(&p.ID, &p.UserID, &p.Text, &p.Anonymous, &p.Sentiment, &p.IsToxic,
			&tagsJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post for user %d: %w", userID, err)
		}
		if p.Tags, err = unmarshalTags(tagsJSON); err != nil {
			return nil, fmt.Errorf("unmarshal tags for post %q: %w", p.ID, err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		p.UpdatedAt = p.UpdatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts for user %d: %w", userID, err)
	}
	return out, nil
}

// Update rewrites the mutable columns of a post.
func (r *PostSQLite) Update(ctx context.Context, p models.Post) error {
	tagsJSON, err := marshalTags(p.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags for post %q: %w", p.ID, err)
	}
	ts := p.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}
	_, err = r.db.ExecContext(ctx, updatePostSQL, p.Text, p.Anonymous, p.Sentiment, p.IsToxic, tagsJSON, ts, p.ID)
	if err != nil {
		return fmt.Errorf("update post %q: %w", p.ID, err)
	}
	return nil
}

// Delete removes a post permanently.
func (r *PostSQLite) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return fmt.Errorf("delete post %q: %w", id, err)
	}
	return nil
}
