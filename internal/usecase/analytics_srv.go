package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/response"

	"go.uber.org/zap"
)

type AnalyticsService interface {
	GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error)
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func (s *analyticsService) GetAnalytics(ctx context.Context) (*response.AnalyticsResponse, error) {
	total, cancelled, err := s.repo.Appointment.CountTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("get booking totals: %w", err)
	}

	byService, err := s.repo.Appointment.CountByService(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings by service: %w", err)
	}

	byMonth, err := s.repo.Appointment.CountByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings by month: %w", err)
	}

	revenue, err := s.repo.Payment.SumCompleted(ctx)
	if err != nil {
		return nil, fmt.Errorf("get revenue: %w", err)
	}

	resp := &response.AnalyticsResponse{
		TotalBookings:     total,
		CancelledBookings: cancelled,
		TotalRevenue:      revenue,
	}
	if total > 0 {
		resp.CancellationRate = float64(cancelled) / float64(total)
	}

	for _, sc := range byService {
		resp.ByService = append(resp.ByService, response.ServiceCountResponse{
			ServiceName: sc.ServiceName,
			Count:       sc.Count,
		})
	}
	for _, mc := range byMonth {
		resp.ByMonth = append(resp.ByMonth, response.MonthCountResponse{
			Month: mc.Month,
			Count: mc.Count,
		})
	}

	s.log.Info("Analytics computed",
		zap.Int64("total_bookings", total),
		zap.Int64("cancelled_bookings", cancelled),
	)

	return resp, nil
}
