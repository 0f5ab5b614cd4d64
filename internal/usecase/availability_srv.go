package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/response"

	"go.uber.org/zap"
)

// DefaultTimeSlots is the clinic's fixed bookable slot grid.
var DefaultTimeSlots = []string{
	"9:00am", "9:30am", "10:00am",
	"10:30am", "11:00am", "11:30am",
	"12:00pm", "12:30pm", "1:00pm",
	"1:30pm", "2:00pm", "2:30pm",
	"3:00pm", "3:30pm", "4:00pm",
}

const dateLayout = "02/01/2006"

type AvailabilityService interface {
	GetDayAvailability(ctx context.Context, doctorID, date string) (*response.AvailabilityResponse, error)
	GetBlockedDates(ctx context.Context, doctorID string, month time.Month, year int) ([]string, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
		now:  time.Now,
	}
}

func (s *availabilityService) GetDayAvailability(ctx context.Context, doctorID, date string) (*response.AvailabilityResponse, error) {
	doctor, err := s.repo.Doctor.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return nil, fmt.Errorf("doctor %s not found", doctorID)
	}

	resp := &response.AvailabilityResponse{
		DoctorID:       doctorID,
		Date:           date,
		AvailableSlots: []string{},
	}

	day, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %s, expected dd/mm/yyyy", date)
	}

	now := s.now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if day.Before(startOfToday) {
		resp.Blocked = true
		resp.BlockedReason = "past date"
		return resp, nil
	}

	// A time-off record blocks the whole date.
	offs, err := s.repo.TimeOff.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("check time off for doctor %s on %s: %w", doctorID, date, err)
	}
	if len(offs) > 0 {
		resp.Blocked = true
		resp.BlockedReason = "time off"
		return resp, nil
	}

	appointments, err := s.repo.Appointment.FindByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, fmt.Errorf("check bookings for doctor %s on %s: %w", doctorID, date, err)
	}

	taken := make(map[string]bool, len(appointments))
	for _, appt := range appointments {
		taken[appt.Time] = true
	}

	for _, slot := range DefaultTimeSlots {
		if taken[slot] {
			resp.TakenSlots = append(resp.TakenSlots, slot)
		} else {
			resp.AvailableSlots = append(resp.AvailableSlots, slot)
		}
	}

	return resp, nil
}

func (s *availabilityService) GetBlockedDates(ctx context.Context, doctorID string, month time.Month, year int) ([]string, error) {
	offs, err := s.repo.TimeOff.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("get blocked dates for doctor %s: %w", doctorID, err)
	}

	var dates []string
	seen := make(map[string]bool)
	for _, off := range offs {
		day, err := time.ParseInLocation(dateLayout, off.Date, time.Local)
		if err != nil {
			// Legacy records may carry unparseable dates; skip them.
			s.log.Warn("Skipping time off with unparseable date",
				zap.String("time_off_id", off.ID),
				zap.String("date", off.Date),
			)
			continue
		}
		if day.Month() == month && day.Year() == year && !seen[off.Date] {
			seen[off.Date] = true
			dates = append(dates, off.Date)
		}
	}

	return dates, nil
}
