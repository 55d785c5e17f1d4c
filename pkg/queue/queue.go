package queue

// Queue represents a basic non-blocking queue.
type Queue interface {
	// Enqueue adds an item to the end of the queue or returns ErrQueueFull.
	Enqueue(item interface{}) error
	// ReadAllMessages drains every pending item in insertion order.
	ReadAllMessages() ([]interface{}, error)
	Size() int
	ClearQueue()
}
