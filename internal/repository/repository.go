package repository

import (
	"context"
	"database/sql"

	"pulseboard/internal/models"
)

// Users is the account store. Lookup methods return (nil, nil) when no row
// matches.
type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// FeedPost is a post joined with its owner's username for feed rendering.
// AuthorUsername is empty when the owner row no longer exists.
type FeedPost struct {
	models.Post
	AuthorUsername string
}

// Posts is the post store. GetByID returns (nil, nil) when the id is unknown.
type Posts interface {
	Create(ctx context.Context, p models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	ListRecent(ctx context.Context, limit int) ([]FeedPost, error)
	ListByUser(ctx context.Context, userID int) ([]models.Post, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Posts: NewPostSQLite(db),
	}
}
