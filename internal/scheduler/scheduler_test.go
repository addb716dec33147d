package scheduler

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grihaplan/server/internal/inference"
)

func TestScheduler_ProbesOnStartup(t *testing.T) {
	var probes atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		probes.Add(1)
		w.Write([]byte(`{"status": "healthy", "model_loaded": true, "device": "cpu"}`))
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, 5*time.Second, 0, logrus.New())
	s := NewScheduler(client, time.Hour, logrus.New())

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return probes.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		health, probedAt, err := s.LastHealth()
		return err == nil && health != nil && health.ModelLoaded && !probedAt.IsZero()
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_RecordsUnavailability(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, 5*time.Second, 0, logrus.New())
	s := NewScheduler(client, time.Hour, logrus.New())

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		_, probedAt, err := s.LastHealth()
		return err != nil && !probedAt.IsZero()
	}, time.Second, 10*time.Millisecond)
}

func TestScheduler_StopTerminates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "healthy", "model_loaded": true, "device": "cpu"}`))
	}))
	defer server.Close()

	client := inference.NewClient(server.URL, 5*time.Second, 0, logrus.New())
	s := NewScheduler(client, 10*time.Millisecond, logrus.New())

	s.Start()
	time.Sleep(50 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "scheduler did not stop")
	}
}
