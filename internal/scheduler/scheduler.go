// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/carlostoek/diana-gamification-be/internal/service"
)

// Scheduler owns the background jobs. Right now that is one job: the daily
// mission rollover at midnight UTC, matching the UTC calendar-day semantics
// of streaks and daily missions.
type Scheduler struct {
	sched    gocron.Scheduler
	missions service.MissionService
}

func New(missions service.MissionService) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("error creating scheduler: %w", err)
	}
	return &Scheduler{sched: sched, missions: missions}, nil
}

// Start registers the jobs and launches the scheduler goroutine.
func (s *Scheduler) Start() error {
	_, err := s.sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(s.runDailyRefresh),
	)
	if err != nil {
		return fmt.Errorf("error registering daily mission refresh job: %w", err)
	}

	s.sched.Start()
	zlog.Info().Msg("Scheduler: started, daily mission refresh at 00:00 UTC")
	return nil
}

// Shutdown stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) runDailyRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	expired, assigned, err := s.missions.RefreshDaily(ctx)
	if err != nil {
		zlog.Error().Err(err).Msg("Scheduler: daily mission refresh failed")
		return
	}
	zlog.Info().Int64("expired", expired).Int("assigned", assigned).Msg("Scheduler: daily mission refresh finished")
}
