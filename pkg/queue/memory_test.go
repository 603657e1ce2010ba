package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(8)
	q.Enqueue("one")
	q.Enqueue("two")
	assert.Equal(t, 2, q.Size())

	messages, err := q.ReadAllMessages()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"one", "two"}, messages)
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_DropsWhenFull(t *testing.T) {
	q := NewInMemoryQueue(1)
	q.Enqueue("one")
	q.Enqueue("two")
	assert.Equal(t, 1, q.Size())

	messages, err := q.ReadAllMessages()
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"one"}, messages)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue(8)
	q.Enqueue("one")
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}
