package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	require.NoError(t, q.Enqueue(3))
	assert.Equal(t, 3, q.Size())

	got, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, got)
	assert.Equal(t, 0, q.Size())

	got, err = q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInMemoryQueue_full(t *testing.T) {
	q := NewInMemoryQueue(2)
	require.NoError(t, q.Enqueue("a"))
	require.NoError(t, q.Enqueue("b"))
	assert.ErrorIs(t, q.Enqueue("c"), ErrQueueFull)

	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
	assert.NoError(t, q.Enqueue("c"))
}

func TestInMemoryQueue_defaultSize(t *testing.T) {
	q := NewInMemoryQueue(0)
	assert.Equal(t, DefaultQueueBufferSize, cap(q.ch))
}

func TestInMemoryQueue_concurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue(1000)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = q.Enqueue(j)
			}
		}()
	}
	wg.Wait()

	got, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Len(t, got, 500)
}
