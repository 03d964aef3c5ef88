package jobs

import (
	"log"
	"sync"
	"time"
)

// Sweeper drops idle entries and reports how many it removed.
type Sweeper interface {
	Cleanup(maxIdle time.Duration) int
}

// CleanupJob periodically sweeps idle rate limiter entries
type CleanupJob struct {
	sweeper  Sweeper
	interval time.Duration
	maxIdle  time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewCleanupJob creates a new cleanup job
func NewCleanupJob(sweeper Sweeper, interval, maxIdle time.Duration) *CleanupJob {
	return &CleanupJob{
		sweeper:  sweeper,
		interval: interval,
		maxIdle:  maxIdle,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins the cleanup job
func (j *CleanupJob) Start() {
	go j.run()
	log.Println("🚀 Cleanup job started")
}

// Stop stops the cleanup job and waits for the loop to exit. Safe to call twice.
func (j *CleanupJob) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
		<-j.done
		log.Println("🛑 Cleanup job stopped")
	})
}

func (j *CleanupJob) run() {
	defer close(j.done)
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopChan:
			return
		}
	}
}

func (j *CleanupJob) sweep() {
	if removed := j.sweeper.Cleanup(j.maxIdle); removed > 0 {
		log.Printf("🧹 Removed %d idle rate limiter entries", removed)
	}
}
