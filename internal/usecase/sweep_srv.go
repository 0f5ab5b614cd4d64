package usecase

import (
	"context"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"

	"go.uber.org/zap"
)

// Accepted date+time layouts for scheduled appointments, tried in order.
var sweepLayouts = []string{
	"02/01/2006 3:04pm",
	"02/01/2006 15:04",
	"2006-01-02 15:04",
}

// SweepService is the status reconciliation job: any non-cancelled Upcoming
// appointment whose scheduled time has elapsed is marked Completed. One
// batched write per pass; re-running over already-completed rows is a no-op.
type SweepService interface {
	Run(ctx context.Context, interval time.Duration)
	SweepOnce(ctx context.Context) (int64, error)
}

type sweepService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewSweepService(repo *repository.Repository, log *zap.Logger) SweepService {
	return &sweepService{
		repo: repo,
		log:  log.With(zap.String("service", "sweep")),
		now:  time.Now,
	}
}

// Run executes a sweep immediately, then on every tick until the context is
// cancelled.
func (s *sweepService) Run(ctx context.Context, interval time.Duration) {
	s.log.Info("Status sweep started", zap.Duration("interval", interval))

	if _, err := s.SweepOnce(ctx); err != nil {
		s.log.Error("Sweep pass failed", zap.Error(err))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Status sweep stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil {
				s.log.Error("Sweep pass failed", zap.Error(err))
			}
		}
	}
}

func (s *sweepService) SweepOnce(ctx context.Context) (int64, error) {
	appointments, err := s.repo.Appointment.FindUpcoming(ctx)
	if err != nil {
		return 0, err
	}

	now := s.now()

	var elapsed []string
	for _, appt := range appointments {
		when, ok := parseScheduledAt(appt.Date, appt.Time)
		if !ok {
			s.log.Warn("Skipping appointment with unparseable schedule",
				zap.String("booking_id", appt.ID),
				zap.String("date", appt.Date),
				zap.String("time", appt.Time),
			)
			continue
		}
		if when.Before(now) {
			elapsed = append(elapsed, appt.ID)
			s.log.Info("Marking appointment completed",
				zap.String("booking_id", appt.ID),
				zap.Time("scheduled_at", when),
			)
		}
	}

	updated, err := s.repo.Appointment.UpdateStatusBatch(ctx, elapsed, entity.AppointmentStatusCompleted)
	if err != nil {
		return 0, err
	}

	if updated > 0 {
		s.log.Info("Sweep pass finished",
			zap.Int("candidates", len(appointments)),
			zap.Int64("completed", updated),
		)
	}

	return updated, nil
}

// parseScheduledAt combines an appointment's date and slot strings into a
// wall-clock time, trying each accepted layout.
func parseScheduledAt(date, timeStr string) (time.Time, bool) {
	joined := date + " " + timeStr
	for _, layout := range sweepLayouts {
		if when, err := time.ParseInLocation(layout, joined, time.Local); err == nil {
			return when, true
		}
	}
	return time.Time{}, false
}
