package queue

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/project"
)

var (
	ErrQueueFull   = errors.New("queue is full")
	ErrQueueClosed = errors.New("queue is closed")
)

// SnapshotQueue is an in-memory queue of project snapshots. Layout
// generation pushes a snapshot after each successful run; subscribers
// (autosave) consume them off the request path.
type SnapshotQueue struct {
	items    chan project.Project
	done     chan struct{}
	maxSize  int
	closed   bool
	mu       sync.RWMutex
	logger   *logrus.Logger
	handlers []func(project.Project) error
}

// NewSnapshotQueue creates a new snapshot queue with the specified buffer size
func NewSnapshotQueue(bufferSize int, logger *logrus.Logger) *SnapshotQueue {
	return &SnapshotQueue{
		items:    make(chan project.Project, bufferSize),
		done:     make(chan struct{}),
		maxSize:  bufferSize,
		logger:   logger,
		handlers: make([]func(project.Project) error, 0),
	}
}

// Push adds a project snapshot to the queue
func (q *SnapshotQueue) Push(snapshot project.Project) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return ErrQueueClosed
	}
	q.mu.RUnlock()

	// Non-blocking send to prevent deadlocks
	select {
	case q.items <- snapshot:
		q.logger.WithField("project", snapshot.Name).Debug("Pushed snapshot to queue")
		return nil
	default:
		return ErrQueueFull
	}
}

// Subscribe adds a handler function that will be called for each snapshot
func (q *SnapshotQueue) Subscribe(handler func(project.Project) error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handlers = append(q.handlers, handler)
}

// Start begins processing items in the queue
func (q *SnapshotQueue) Start() {
	go q.process()
}

// process handles the queue processing loop
func (q *SnapshotQueue) process() {
	for {
		select {
		case <-q.done:
			return
		case snapshot := <-q.items:
			q.processSnapshot(snapshot)
		}
	}
}

// processSnapshot sends the snapshot to all subscribed handlers
func (q *SnapshotQueue) processSnapshot(snapshot project.Project) {
	q.mu.RLock()
	handlers := q.handlers
	q.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(snapshot); err != nil {
			q.logger.WithError(err).Error("Handler failed to process snapshot")
		}
	}
}

// Close stops the queue and prevents new items from being added
func (q *SnapshotQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}

	q.closed = true
	close(q.done)
	close(q.items)
	return nil
}

// Len returns the current number of snapshots in the queue
func (q *SnapshotQueue) Len() int {
	return len(q.items)
}

// IsClosed returns whether the queue has been closed
func (q *SnapshotQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
