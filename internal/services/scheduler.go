package services

import (
	"context"
	"sync"
	"time"

	"deepresearch-backend/pkg/logger"

	"go.uber.org/zap"
)

// Scheduler owns the two periodic triggers: processing of pending prompts
// and the availability-snapshot refresh. Start launches a single goroutine;
// Stop shuts it down and waits for it to exit.
//
// Overlap policy: a processing cycle that would overlap a still-running one
// is skipped, never queued. The PromptService mutex already prevents double
// processing; the TryLock here just keeps ticks from piling up behind it.
type Scheduler struct {
	Prompts *PromptService
	Status  *StatusService

	ProcessInterval time.Duration
	RefreshInterval time.Duration

	cycleMu sync.Mutex
	stop    chan struct{}
	done    chan struct{}
}

func NewScheduler(prompts *PromptService, status *StatusService, processInterval, refreshInterval time.Duration) *Scheduler {
	return &Scheduler{
		Prompts:         prompts,
		Status:          status,
		ProcessInterval: processInterval,
		RefreshInterval: refreshInterval,
	}
}

// Start begins the periodic triggers. It must be called at most once per
// Scheduler.
func (s *Scheduler) Start() {
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)

		processTicker := time.NewTicker(s.ProcessInterval)
		defer processTicker.Stop()
		refreshTicker := time.NewTicker(s.RefreshInterval)
		defer refreshTicker.Stop()

		logger.Log.Info("scheduler started",
			zap.Duration("process_interval", s.ProcessInterval),
			zap.Duration("refresh_interval", s.RefreshInterval))

		for {
			select {
			case <-processTicker.C:
				s.RunProcessCycle()
			case <-refreshTicker.C:
				s.Status.Refresh()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop shuts the scheduler down and waits for the loop to exit.
func (s *Scheduler) Stop() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
}

// RunProcessCycle runs one processing cycle: skip when a cycle is already in
// flight or the generator is unavailable, otherwise process all pending
// prompts.
func (s *Scheduler) RunProcessCycle() {
	if !s.cycleMu.TryLock() {
		logger.Log.Info("previous processing cycle still running, skipping")
		return
	}
	defer s.cycleMu.Unlock()

	if !s.Status.Gemini.Available() {
		logger.Log.Warn("skipping scheduled prompt processing: gemini API is not available")
		return
	}

	processed := s.Prompts.ProcessAllPending(context.Background())
	logger.Log.Info("scheduled processing cycle finished", zap.Int("processed", processed))
}
