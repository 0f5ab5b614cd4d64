package adaptor

import (
	"clinic-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Doctor       *DoctorHandler
	Catalog      *CatalogHandler
	Availability *AvailabilityHandler
	Analytics    *AnalyticsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Doctor:       NewDoctorHandler(service.Doctor, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Analytics:    NewAnalyticsHandler(service.Analytics, log),
	}
}
