package overlay

import (
	"context"
	"errors"
	"sync"
)

// DefaultQueueCapacity bounds the message queue when no capacity is configured.
const DefaultQueueCapacity = 100

// ErrQueueClosed is returned by Send after Close.
var ErrQueueClosed = errors.New("message queue closed")

// Queue is the single bounded message queue feeding the controller loop.
// Senders block while it is full.
type Queue struct {
	ch chan Message

	mu     sync.RWMutex
	closed bool
}

// NewQueue creates a queue holding at most capacity pending messages.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue{ch: make(chan Message, capacity)}
}

// Send enqueues msg, waiting for space if the queue is full. A blocked Send
// holds off Close until ctx ends.
func (q *Queue) Send(ctx context.Context, msg Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the stream. Messages already queued are still delivered.
// Close is idempotent.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.ch)
}

// Messages returns the receive side of the queue.
func (q *Queue) Messages() <-chan Message {
	return q.ch
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	return len(q.ch)
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return cap(q.ch)
}
