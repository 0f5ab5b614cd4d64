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

func wireDoctor(
	r chi.Router,
	doctorHandler *adaptor.DoctorHandler,
	availabilityHandler *adaptor.AvailabilityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/doctors - List doctors (optional ?service_id= filter)
	r.Get("/api/doctors", doctorHandler.GetDoctors)

	// GET /api/doctors/{id} - Doctor profile
	r.Get("/api/doctors/{id}", doctorHandler.GetDoctorByID)

	// GET /api/doctors/{id}/time-off - Doctor's scheduled time off
	r.Get("/api/doctors/{id}/time-off", doctorHandler.GetDoctorTimeOff)

	// GET /api/doctors/{id}/availability?date= - Open slots for a day
	r.Get("/api/doctors/{id}/availability", availabilityHandler.GetDayAvailability)

	// GET /api/doctors/{id}/blocked-dates?month=&year= - Fully blocked dates
	r.Get("/api/doctors/{id}/blocked-dates", availabilityHandler.GetBlockedDates)

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleStaff, log))

		// POST /api/staff/doctors - Register a new doctor (staff)
		r.Post("/api/staff/doctors", doctorHandler.CreateDoctor)

		// POST /api/staff/time-off - Block out a slot or day (staff)
		r.Post("/api/staff/time-off", doctorHandler.AddTimeOff)

		// DELETE /api/staff/time-off/{id} - Remove a block (staff)
		r.Delete("/api/staff/time-off/{id}", doctorHandler.RemoveTimeOff)
	})
}
