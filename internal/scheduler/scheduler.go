package scheduler

import (
	"context"
	"log"
	"time"
)

// Dispatcher sends whatever reminders are due right now.
type Dispatcher interface {
	DispatchDue(ctx context.Context) (int, error)
}

type Scheduler struct {
	dispatcher Dispatcher
	interval   time.Duration
}

func NewScheduler(dispatcher Dispatcher, interval time.Duration) *Scheduler {
	return &Scheduler{dispatcher: dispatcher, interval: interval}
}

// Start runs the dispatch loop until ctx is cancelled. One pass runs
// immediately so reminders that came due while the service was down go out
// at boot.
func (s *Scheduler) Start(ctx context.Context) error {
	log.Printf("reminder scheduler started, interval %s", s.interval)

	s.run(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("reminder scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *Scheduler) run(ctx context.Context) {
	dispatchCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	sent, err := s.dispatcher.DispatchDue(dispatchCtx)
	if err != nil {
		log.Printf("reminder dispatch failed: %v", err)
		return
	}
	if sent > 0 {
		log.Printf("dispatched %d deadline reminders", sent)
	}
}
