package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pulseboard/internal/analyzer"
	"pulseboard/internal/models"
	"pulseboard/internal/repository"
)

const (
	maxPostLen = 500
	feedLimit  = 100

	anonymousAuthor = "Anonymous"
	unknownAuthor   = "Unknown"
)

// PostService orchestrates the post lifecycle: annotation at write time,
// ownership checks on mutation, and feed projection on reads.
type PostService struct {
	posts    repository.Posts
	analyzer analyzer.TextAnalyzer
	stream   *Stream
}

func NewPostService(posts repository.Posts, an analyzer.TextAnalyzer, stream *Stream) *PostService {
	return &PostService{posts: posts, analyzer: an, stream: stream}
}

var _ Posts = (*PostService)(nil)

// validateText trims and checks length bounds, returning the cleaned text.
func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: text required", ErrValidation)
	}
	if utf8.RuneCountInString(text) > maxPostLen {
		return "", fmt.Errorf("%w: max %d chars", ErrValidation, maxPostLen)
	}
	return text, nil
}

// Create validates and annotates the text, then persists a post owned by the
// caller. A toxic post is rejected and never stored.
func (s *PostService) Create(ctx context.Context, caller Identity, text string, anonymous bool) (string, error) {
	text, err := validateText(text)
	if err != nil {
		return "", err
	}

	ann := s.analyzer.Analyze(text)
	if ann.IsToxic {
		return "", ErrContentRejected
	}

	now := time.Now().UTC()
	p := models.Post{
		ID:        uuid.NewString(),
		UserID:    caller.UserID,
		Text:      text,
		Anonymous: anonymous,
		Sentiment: ann.Sentiment,
		IsToxic:   ann.IsToxic,
		Tags:      ann.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return "", err
	}

	// Broadcast to live feed subscribers. Owned is viewer-specific, so it is
	// always false on the wire here.
	s.stream.Publish(models.FeedItem{
		ID:        p.ID,
		Text:      p.Text,
		Anonymous: p.Anonymous,
		Author:    apparentAuthor(p.Anonymous, caller.Username),
		Sentiment: p.Sentiment,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
	})

	return p.ID, nil
}

// Feed returns the latest posts, newest first, anonymized for the viewer. A
// zero viewer (no token) sees owned=false everywhere.
func (s *PostService) Feed(ctx context.Context, viewer Identity) ([]models.FeedItem, error) {
	posts, err := s.posts.ListRecent(ctx, feedLimit)
	if err != nil {
		return nil, err
	}

	out := make([]models.FeedItem, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.FeedItem{
			ID:        p.ID,
			Text:      p.Text,
			Anonymous: p.Anonymous,
			Author:    apparentAuthor(p.Anonymous, p.AuthorUsername),
			Sentiment: p.Sentiment,
			Tags:      p.Tags,
			CreatedAt: p.CreatedAt,
			Owned:     viewer.UserID != 0 && viewer.UserID == p.UserID,
		})
	}
	return out, nil
}

// Mine returns all posts owned by the caller, newest first. The anonymous
// flag is never hidden from the owner.
func (s *PostService) Mine(ctx context.Context, userID int) ([]models.MyPost, error) {
	posts, err := s.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.MyPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.MyPost{
			ID:        p.ID,
			Text:      p.Text,
			Anonymous: p.Anonymous,
			Sentiment: p.Sentiment,
			Tags:      p.Tags,
			CreatedAt: p.CreatedAt,
		})
	}
	return out, nil
}

// Update applies a partial update after re-checking ownership against the
// store. New text passes the same validation and annotation as create; a
// toxic replacement rejects the whole update, including any anonymous-flag
// change in the same request.
func (s *PostService) Update(ctx context.Context, userID int, postID string, upd PostUpdate) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if p.UserID != userID {
		return ErrForbidden
	}

	if upd.Text != nil {
		text, err := validateText(*upd.Text)
		if err != nil {
			return err
		}
		ann := s.analyzer.Analyze(text)
		if ann.IsToxic {
			return ErrContentRejected
		}
		p.Text = text
		p.Sentiment = ann.Sentiment
		p.IsToxic = ann.IsToxic
		p.Tags = ann.Tags
	}
	if upd.Anonymous != nil {
		p.Anonymous = *upd.Anonymous
	}
	p.UpdatedAt = time.Now().UTC()

	return s.posts.Update(ctx, *p)
}

// Delete removes a post after re-checking ownership against the store.
func (s *PostService) Delete(ctx context.Context, userID int, postID string) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if p.UserID != userID {
		return ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

// apparentAuthor hides the username behind "Anonymous" when the post is
// flagged, and degrades to "Unknown" when the owner row is gone.
func apparentAuthor(anonymous bool, username string) string {
	if anonymous {
		return anonymousAuthor
	}
	if username == "" {
		return unknownAuthor
	}
	return username
}
