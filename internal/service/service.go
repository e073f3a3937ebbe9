package service

import (
	"context"

	"pulseboard/internal/analyzer"
	"pulseboard/internal/models"
	"pulseboard/internal/repository"
)

// Identity is the decoded subject of an access token.
type Identity struct {
	UserID   int
	Username string
}

// AuthResult pairs a freshly issued token with the public user fields.
type AuthResult struct {
	Token string
	User  models.User
}

type Authorization interface {
	Register(ctx context.Context, username, email, password string) (AuthResult, error)
	Login(ctx context.Context, emailOrUsername, password string) (AuthResult, error)
	ParseToken(accessToken string) (Identity, error)
	Profile(ctx context.Context, userID int) (*models.User, error)
}

// PostUpdate is a partial update; nil fields are left unchanged.
type PostUpdate struct {
	Text      *string
	Anonymous *bool
}

// Posts exposes the post lifecycle: annotated create, feed/mine reads, and
// owner-guarded update/delete.
type Posts interface {
	Create(ctx context.Context, caller Identity, text string, anonymous bool) (string, error)
	Feed(ctx context.Context, viewer Identity) ([]models.FeedItem, error)
	Mine(ctx context.Context, userID int) ([]models.MyPost, error)
	Update(ctx context.Context, userID int, postID string, upd PostUpdate) error
	Delete(ctx context.Context, userID int, postID string) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Posts
	Stream *Stream
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, an analyzer.TextAnalyzer, tokens TokenConfig) *Service {
	stream := NewStream()
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Posts:         NewPostService(repos.Posts, an, stream),
		Stream:        stream,
	}
}
