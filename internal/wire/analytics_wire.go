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

func wireAnalytics(
	r chi.Router,
	analyticsHandler *adaptor.AnalyticsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(repo.User, entity.RoleStaff, log))

		// GET /api/staff/analytics - Booking and revenue overview (staff)
		r.Get("/api/staff/analytics", analyticsHandler.GetAnalytics)
	})
}
