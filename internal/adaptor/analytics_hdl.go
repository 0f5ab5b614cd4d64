package adaptor

import (
	"net/http"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

// GetAnalytics handles GET /api/staff/analytics (staff only)
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.service.GetAnalytics(r.Context())
	if err != nil {
		h.log.Error("Failed to get analytics", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", analytics)
}
