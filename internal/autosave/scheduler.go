package autosave

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultInterval is used when a scheduler is created with a non-positive interval
const DefaultInterval = 10 * time.Second

// Saver persists application state. Calls must be idempotent.
type Saver interface {
	SaveAll()
}

// Scheduler calls SaveAll on a fixed interval until stopped
type Scheduler struct {
	saver    Saver
	interval time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a stopped scheduler
func NewScheduler(saver Saver, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		saver:    saver,
		interval: interval,
	}
}

// Interval returns the time between saves
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Start begins periodic saving until ctx is cancelled or Stop is called.
// Returns false if the scheduler is already running.
func (s *Scheduler) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return false
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(ctx, s.done)

	log.Printf("Autosave started every %v", s.interval)
	return true
}

// Stop halts periodic saving and waits for the loop to exit
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	log.Printf("Autosave stopped")
}

// Running reports whether the save loop is active
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Scheduler) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.saver.SaveAll()
		}
	}
}
