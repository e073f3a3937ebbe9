package service

import (
	"testing"
	"time"

	"pulseboard/internal/models"
)

func TestStream_PublishReachesAllSubscribers(t *testing.T) {
	s := NewStream()

	a, cancelA := s.Subscribe()
	b, cancelB := s.Subscribe()
	defer cancelA()
	defer cancelB()

	s.Publish(models.FeedItem{ID: "p1"})

	for name, ch := range map[string]<-chan models.FeedItem{"a": a, "b": b} {
		select {
		case item := <-ch:
			if item.ID != "p1" {
				t.Fatalf("subscriber %s got %q", name, item.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s got nothing", name)
		}
	}
}

func TestStream_CancelStopsDelivery(t *testing.T) {
	s := NewStream()

	ch, cancel := s.Subscribe()
	cancel()
	cancel() // idempotent

	// Channel is closed after cancel.
	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel after cancel")
	}

	// Publishing after cancel must not panic.
	s.Publish(models.FeedItem{ID: "p2"})
}

func TestStream_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	s := NewStream()

	_, cancel := s.Subscribe()
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// More items than the subscriber buffer; extra ones are dropped.
		for i := 0; i < subscriberBuffer*2; i++ {
			s.Publish(models.FeedItem{ID: "x"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
}
