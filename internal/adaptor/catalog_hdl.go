package adaptor

import (
	"net/http"
	"strings"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetServices handles GET /api/services (public)
func (h *CatalogHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.GetServices(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServiceByID handles GET /api/services/{id} (public)
func (h *CatalogHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	serviceID := chi.URLParam(r, "id")
	if serviceID == "" {
		utils.ResponseBadRequest(w, "Service ID is required", nil)
		return
	}

	service, err := h.service.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		h.handleServiceError(w, err, "get service by ID")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
