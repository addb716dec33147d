package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"grihaplan/server/internal/project"
)

func TestNewSnapshotQueue(t *testing.T) {
	logger := logrus.New()
	q := NewSnapshotQueue(10, logger)
	assert.NotNil(t, q)
	assert.Equal(t, 10, q.maxSize)
	assert.False(t, q.IsClosed())
}

func TestSnapshotQueue_Push(t *testing.T) {
	logger := logrus.New()
	q := NewSnapshotQueue(2, logger)

	// Test successful push
	snap := project.Project{Name: "test1"}
	err := q.Push(snap)
	assert.NoError(t, err)
	assert.Equal(t, 1, q.Len())

	// Test queue full
	for i := 0; i < 2; i++ {
		_ = q.Push(project.Project{Name: "test"})
	}
	err = q.Push(snap)
	assert.Equal(t, ErrQueueFull, err)

	// Test closed queue
	q.Close()
	err = q.Push(snap)
	assert.Equal(t, ErrQueueClosed, err)
}

func TestSnapshotQueue_Subscribe(t *testing.T) {
	logger := logrus.New()
	q := NewSnapshotQueue(10, logger)

	var processed []string
	var mu sync.Mutex

	// Add handler
	q.Subscribe(func(snap project.Project) error {
		mu.Lock()
		processed = append(processed, snap.Name)
		mu.Unlock()
		return nil
	})

	// Start queue
	q.Start()

	// Push items
	err := q.Push(project.Project{Name: "test1"})
	assert.NoError(t, err)
	err = q.Push(project.Project{Name: "test2"})
	assert.NoError(t, err)

	// Wait for processing
	time.Sleep(100 * time.Millisecond)

	// Verify processing
	mu.Lock()
	assert.Equal(t, []string{"test1", "test2"}, processed)
	mu.Unlock()
}

func TestSnapshotQueue_Close(t *testing.T) {
	logger := logrus.New()
	q := NewSnapshotQueue(10, logger)

	// Test first close
	err := q.Close()
	assert.NoError(t, err)
	assert.True(t, q.IsClosed())

	// Test second close (should be no-op)
	err = q.Close()
	assert.NoError(t, err)
}

func TestSnapshotQueue_ProcessSnapshot(t *testing.T) {
	logger := logrus.New()
	q := NewSnapshotQueue(10, logger)

	var wg sync.WaitGroup
	processedCount := 0
	var mu sync.Mutex

	// Add multiple handlers
	for i := 0; i < 3; i++ {
		wg.Add(1)
		q.Subscribe(func(snap project.Project) error {
			mu.Lock()
			processedCount++
			mu.Unlock()
			wg.Done()
			return nil
		})
	}

	// Start queue
	q.Start()

	// Push a snapshot
	err := q.Push(project.Project{Name: "test"})
	assert.NoError(t, err)

	// Wait for all handlers
	wg.Wait()

	// Verify all handlers processed the snapshot
	mu.Lock()
	assert.Equal(t, 3, processedCount)
	mu.Unlock()
}
