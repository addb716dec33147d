package processor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"grihaplan/server/config"
	"grihaplan/server/internal/project"
	"grihaplan/server/internal/queue"
)

// Saver persists a project snapshot. *database.Database satisfies it.
type Saver interface {
	SaveProject(p project.Project) error
}

// AutosaveProcessor drains the snapshot queue and persists each snapshot
// with retry, keeping sqlite writes off the request path.
type AutosaveProcessor struct {
	saver     Saver
	logger    *logrus.Logger
	config    *config.Config
	queue     *queue.SnapshotQueue
	waitGroup sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewAutosaveProcessor creates a new autosave processor instance
func NewAutosaveProcessor(saver Saver, queue *queue.SnapshotQueue, config *config.Config, logger *logrus.Logger) *AutosaveProcessor {
	ctx, cancel := context.WithCancel(context.Background())
	return &AutosaveProcessor{
		saver:  saver,
		queue:  queue,
		config: config,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start begins processing snapshots from the queue
func (p *AutosaveProcessor) Start() {
	for i := 0; i < p.config.Autosave.Workers; i++ {
		p.waitGroup.Add(1)
		go p.processLoop()
	}
}

// Stop gracefully shuts down the processor
func (p *AutosaveProcessor) Stop() {
	p.cancel()
	p.waitGroup.Wait()
}

// processLoop handles the continuous processing of snapshots
func (p *AutosaveProcessor) processLoop() {
	defer p.waitGroup.Done()

	p.queue.Subscribe(func(snapshot project.Project) error {
		return p.processSnapshot(snapshot)
	})
}

// processSnapshot persists a single snapshot with retry logic
func (p *AutosaveProcessor) processSnapshot(snapshot project.Project) error {
	var err error
	for attempt := 0; attempt <= p.config.Autosave.MaxRetries; attempt++ {
		if attempt > 0 {
			p.logger.Infof("Retrying autosave, attempt %d of %d", attempt, p.config.Autosave.MaxRetries)
			time.Sleep(time.Duration(p.config.Autosave.RetryDelaySeconds) * time.Second)
		}

		err = p.saver.SaveProject(snapshot)
		if err == nil {
			p.logger.WithField("project", snapshot.Name).Info("Autosaved project snapshot")
			return nil
		}

		p.logger.Errorf("Autosave failed: %v", err)
	}

	return fmt.Errorf("failed to autosave after %d attempts: %w", p.config.Autosave.MaxRetries, err)
}
