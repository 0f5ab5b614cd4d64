package usecase

import (
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Booking      BookingService
	Availability AvailabilityService
	Doctor       DoctorService
	Catalog      CatalogService
	Analytics    AnalyticsService
	Sweep        SweepService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Booking:      NewBookingService(repo, log),
		Availability: NewAvailabilityService(repo, log),
		Doctor:       NewDoctorService(repo, log),
		Catalog:      NewCatalogService(repo, log),
		Analytics:    NewAnalyticsService(repo, log),
		Sweep:        NewSweepService(repo, log),
	}
}
