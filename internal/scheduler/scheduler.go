// Package scheduler runs the periodic pending-breach digest. The job is
// purely observational: it logs how many breaches are still awaiting an
// advisor decision and never mutates state.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron          *cron.Cron
	breachService *service.BreachService
}

// New creates a Scheduler around the given breach service.
func New(breachService *service.BreachService) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		breachService: breachService,
	}
}

// Start registers the digest job with the given cron schedule and starts the
// runner. An empty schedule disables the job.
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		return nil
	}

	if _, err := s.cron.AddFunc(schedule, s.logPendingDigest); err != nil {
		return fmt.Errorf("failed to schedule breach digest: %w", err)
	}

	s.cron.Start()
	log.Printf("Breach digest scheduled: %s", schedule)
	return nil
}

// Stop stops the cron runner, waiting for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) logPendingDigest() {
	count, err := s.breachService.PendingCount()
	if err != nil {
		log.Printf("Breach digest failed: %v", err)
		return
	}
	log.Printf("Breach digest: %d breaches awaiting advisor decision", count)
}
