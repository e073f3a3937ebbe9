package service

import (
	"sync"

	"pulseboard/internal/models"
)

// Per-subscriber buffer; a subscriber that falls this far behind starts
// dropping items rather than blocking writers.
const subscriberBuffer = 16

// Stream is an in-process pub/sub hub for newly created feed items. The
// websocket layer subscribes; PostService publishes on every create.
type Stream struct {
	mu   sync.RWMutex
	subs map[chan models.FeedItem]struct{}
}

func NewStream() *Stream {
	return &Stream{subs: make(map[chan models.FeedItem]struct{})}
}

// Subscribe registers a new subscriber and returns its channel plus a cancel
// function. Cancel is idempotent and closes the channel.
func (s *Stream) Subscribe() (<-chan models.FeedItem, func()) {
	ch := make(chan models.FeedItem, subscriberBuffer)

	s.mu.Lock()
	s.subs[ch] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, ch)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish fans the item out to all subscribers without blocking; slow
// subscribers miss items instead of stalling post creation.
func (s *Stream) Publish(item models.FeedItem) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs {
		select {
		case ch <- item:
		default:
		}
	}
}
