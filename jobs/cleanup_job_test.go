package jobs

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingSweeper struct {
	calls   atomic.Int32
	maxIdle atomic.Int64
}

func (s *countingSweeper) Cleanup(maxIdle time.Duration) int {
	s.maxIdle.Store(int64(maxIdle))
	s.calls.Add(1)
	return 1
}

func TestCleanupJobSweepsUntilStopped(t *testing.T) {
	sweeper := &countingSweeper{}
	job := NewCleanupJob(sweeper, 5*time.Millisecond, time.Minute)
	job.Start()

	deadline := time.Now().Add(2 * time.Second)
	for sweeper.calls.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("sweeper called %d times, want at least 2", sweeper.calls.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}

	job.Stop()
	job.Stop()

	if got := time.Duration(sweeper.maxIdle.Load()); got != time.Minute {
		t.Fatalf("maxIdle = %v, want 1m", got)
	}

	after := sweeper.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if sweeper.calls.Load() != after {
		t.Fatal("sweeper still running after Stop")
	}
}
