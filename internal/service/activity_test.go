package service

import (
	"testing"
	"time"

	"quest_admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityFeed_PublishSubscribe(t *testing.T) {
	feed := NewActivityFeed(2)

	events, unsubscribe := feed.Subscribe()
	assert.Equal(t, 1, feed.Subscribers())

	event := model.ReviewEvent{Type: model.EventProofReviewed, Actor: "did:privy:admin", At: time.Now()}
	feed.Publish(event)

	select {
	case got := <-events:
		assert.Equal(t, event, got)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, feed.Subscribers())

	_, ok := <-events
	assert.False(t, ok, "channel should be closed after unsubscribe")
}

func TestActivityFeed_DropsForSlowSubscriber(t *testing.T) {
	feed := NewActivityFeed(1)
	events, unsubscribe := feed.Subscribe()
	defer unsubscribe()

	feed.Publish(model.ReviewEvent{Type: model.EventProofReviewed})
	feed.Publish(model.ReviewEvent{Type: model.EventPayoutUpdated})

	got := <-events
	assert.Equal(t, model.EventProofReviewed, got.Type)
	require.Len(t, events, 0)
}
