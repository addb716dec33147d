package scheduler

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"grihaplan/server/internal/inference"
)

// Scheduler runs the periodic background jobs of the planner. The only
// job today is the inference health probe: the floor-plan service loads
// a large model and can drop off while the planner keeps serving layout
// requests, so availability transitions are worth logging as they
// happen rather than on the next user click.
type Scheduler struct {
	client   *inference.Client
	logger   *logrus.Logger
	interval time.Duration
	stopChan chan struct{}
	wg       sync.WaitGroup

	mu         sync.RWMutex
	lastHealth *inference.Health
	lastErr    error
	lastProbe  time.Time
}

// NewScheduler creates a new scheduler
func NewScheduler(client *inference.Client, interval time.Duration, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Scheduler{
		client:   client,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins the scheduled tasks
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.runScheduler()
}

// runScheduler handles all scheduled tasks
func (s *Scheduler) runScheduler() {
	defer s.wg.Done()

	// Probe once at startup so status is known before the first tick
	s.probeHealth()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.probeHealth()
		}
	}
}

// probeHealth checks the inference service and logs availability
// transitions.
func (s *Scheduler) probeHealth() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	health, err := s.client.CheckHealth(ctx)

	s.mu.Lock()
	wasHealthy := s.lastErr == nil && s.lastHealth != nil
	s.lastHealth = health
	s.lastErr = err
	s.lastProbe = time.Now()
	s.mu.Unlock()

	if err != nil {
		if wasHealthy {
			s.logger.WithError(err).Warn("Floor plan service became unavailable")
		} else {
			s.logger.WithError(err).Debug("Floor plan service still unavailable")
		}
		return
	}

	if !wasHealthy {
		s.logger.WithFields(logrus.Fields{
			"status":       health.Status,
			"model_loaded": health.ModelLoaded,
			"device":       health.Device,
		}).Info("Floor plan service is available")
	}
}

// LastHealth returns the most recent probe result and when it was taken.
func (s *Scheduler) LastHealth() (*inference.Health, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastHealth, s.lastProbe, s.lastErr
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}
