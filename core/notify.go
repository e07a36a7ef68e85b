package core

import (
	"context"
	"sync"
)

// Broadcaster fans classified failure notifications out to registered
// subscribers. The client publishes fire-and-forget; subscriber order is not
// guaranteed and a panicking subscriber is the host application's bug.
type Broadcaster struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[int]func(Notification)
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subscribers: map[int]func(Notification){}}
}

// Subscribe registers a callback and returns its unsubscribe function.
func (b *Broadcaster) Subscribe(fn func(Notification)) func() {
	if b == nil || fn == nil {
		return func() {}
	}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
		})
	}
}

func (b *Broadcaster) Publish(_ context.Context, notification Notification) {
	if b == nil {
		return
	}
	b.mu.RLock()
	callbacks := make([]func(Notification), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		callbacks = append(callbacks, fn)
	}
	b.mu.RUnlock()

	for _, fn := range callbacks {
		fn(notification)
	}
}

var _ Notifier = (*Broadcaster)(nil)
