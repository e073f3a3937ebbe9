package models

import "time"

// Sentiment classes assigned by the annotator.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Post is a stored post together with its write-time annotations.
// Sentiment, IsToxic and Tags are always derived from Text, never set directly.
type Post struct {
	ID        string    `json:"id"` // UUID
	UserID    int       `json:"user_id"`
	Text      string    `json:"text"` // 1-500 chars, trimmed
	Anonymous bool      `json:"anonymous"`
	Sentiment string    `json:"sentiment"` // positive | neutral | negative
	IsToxic   bool      `json:"-"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedItem is the public-feed projection of a post. The author is replaced
// by "Anonymous" when the post is flagged anonymous.
type FeedItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Anonymous bool      `json:"anonymous"`
	Author    string    `json:"author"`
	Sentiment string    `json:"sentiment"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	Owned     bool      `json:"owned"`
}

// MyPost is the owner's view of their own post; the anonymous flag is never
// hidden from the owner.
type MyPost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Anonymous bool      `json:"anonymous"`
	Sentiment string    `json:"sentiment"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}
