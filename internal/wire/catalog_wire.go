package wire

import (
	"clinic-booking/internal/adaptor"
	"clinic-booking/internal/data/repository"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - List treatment services
	r.Get("/api/services", catalogHandler.GetServices)

	// GET /api/services/{id} - Service details
	r.Get("/api/services/{id}", catalogHandler.GetServiceByID)
}
