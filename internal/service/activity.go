package service

import (
	"sync"

	"quest_admin/internal/model"
	"quest_admin/pkg/logger"

	"go.uber.org/zap"
)

const defaultFeedBuffer = 16

// ActivityFeed fans review events out to subscribed dashboards. Publishing
// never blocks: a subscriber whose buffer is full misses the event.
type ActivityFeed struct {
	mu          sync.RWMutex
	subscribers map[chan model.ReviewEvent]struct{}
	buffer      int
}

func NewActivityFeed(buffer int) *ActivityFeed {
	if buffer <= 0 {
		buffer = defaultFeedBuffer
	}
	return &ActivityFeed{
		subscribers: make(map[chan model.ReviewEvent]struct{}),
		buffer:      buffer,
	}
}

// Subscribe returns a channel of events and a function that detaches it.
// The channel is closed once the function has been called.
func (f *ActivityFeed) Subscribe() (<-chan model.ReviewEvent, func()) {
	ch := make(chan model.ReviewEvent, f.buffer)

	f.mu.Lock()
	f.subscribers[ch] = struct{}{}
	f.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subscribers, ch)
			f.mu.Unlock()
			close(ch)
		})
	}
}

func (f *ActivityFeed) Publish(event model.ReviewEvent) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for ch := range f.subscribers {
		select {
		case ch <- event:
		default:
			logger.Logger().Warn("activity subscriber lagging, event dropped",
				zap.String("type", string(event.Type)))
		}
	}
}

func (f *ActivityFeed) Subscribers() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subscribers)
}
