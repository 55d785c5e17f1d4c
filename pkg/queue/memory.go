// queue package

package queue

import (
	"errors"
	"sync"
)

const (
	// DefaultQueueBufferSize represents the default maximum size of a queue
	DefaultQueueBufferSize = 1024
)

// ErrQueueFull is returned by Enqueue when the buffer is full.
var ErrQueueFull = errors.New("queue is full")

// InMemoryQueue implements an in-memory queue.
type InMemoryQueue struct {
	ch   chan interface{}
	lock sync.RWMutex
}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue(size int) *InMemoryQueue {
	if size <= 0 {
		size = DefaultQueueBufferSize
	}
	return &InMemoryQueue{
		ch: make(chan interface{}, size),
	}
}

// Enqueue adds an item to the end of the queue without blocking.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	q.lock.RLock()
	defer q.lock.RUnlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for len(q.ch) > 0 {
		messages = append(messages, <-q.ch)
	}

	return messages, nil
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for len(q.ch) > 0 {
		<-q.ch
	}
}
