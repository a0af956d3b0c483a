// Package broadcast provides a generic in-memory publish/subscribe channel.
//
// Delivery is non-blocking: every subscriber owns a buffered channel and a
// message that does not fit in the buffer is dropped for that subscriber
// only. Subscriptions end when their context is cancelled or the
// broadcaster is closed, and the subscriber channel is closed then.
package broadcast

import (
	"context"
	"sync"
)

// Broadcaster fans messages out to all current subscribers.
type Broadcaster[T any] struct {
	subs   map[*subscription[T]]struct{}
	done   chan struct{}
	buffer int
	mu     sync.RWMutex
	closed bool
}

type subscription[T any] struct {
	ch   chan T
	once sync.Once
}

func (s *subscription[T]) close() {
	s.once.Do(func() { close(s.ch) })
}

// New creates a broadcaster with the given per-subscriber buffer size.
// A size below 1 is treated as 1.
func New[T any](buffer int) *Broadcaster[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Broadcaster[T]{
		subs:   make(map[*subscription[T]]struct{}),
		done:   make(chan struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a subscriber until ctx is done.
func (b *Broadcaster[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscription[T]{ch: make(chan T, b.buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.close()
		return sub.ch
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.remove(sub)
		case <-b.done:
		}
	}()

	return sub.ch
}

// Publish delivers msg to every subscriber that has buffer space.
// It never blocks and returns the number of subscribers that received it.
func (b *Broadcaster[T]) Publish(msg T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for sub := range b.subs {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			// медленный подписчик пропускает сообщение
		}
	}
	return delivered
}

// Subscribers returns the number of active subscriptions.
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close ends all subscriptions. Later Subscribe calls get a closed channel.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	for sub := range b.subs {
		delete(b.subs, sub)
		sub.close()
	}
}

func (b *Broadcaster[T]) remove(sub *subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
	}
	sub.close()
}
