package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/middleware"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Confirm a new booking (authenticated patients)
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - View booking details
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// PUT /api/bookings/{id}/cancel - Cancel a booking
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// GET /api/user/bookings - View booking history (user's own bookings)
		r.Get("/api/user/bookings", bookingHandler.GetMyBookings)
	})

	// ==================== STAFF ROUTES ====================
	r.Route("/api/staff/doctors/{id}/bookings", func(r chi.Router) {
		// Require both authentication AND staff role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleStaff, log))

		// GET /api/staff/doctors/{id}/bookings - View a doctor's schedule (staff)
		r.Get("/", bookingHandler.GetDoctorBookings)
	})
}
