package adaptor

import (
	"net/http"
	"strings"
	"time"

	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetDayAvailability handles GET /api/doctors/{id}/availability?date=dd/mm/yyyy (public)
func (h *AvailabilityHandler) GetDayAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")
	if doctorID == "" {
		utils.ResponseBadRequest(w, "Doctor ID is required", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	availability, err := h.service.GetDayAvailability(r.Context(), doctorID, date)
	if err != nil {
		h.handleServiceError(w, err, "get day availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetBlockedDates handles GET /api/doctors/{id}/blocked-dates?month=1&year=2026 (public)
func (h *AvailabilityHandler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")
	if doctorID == "" {
		utils.ResponseBadRequest(w, "Doctor ID is required", nil)
		return
	}

	query := r.URL.Query()
	month := utils.ParseInt(query.Get("month"), int(time.Now().Month()))
	year := utils.ParseInt(query.Get("year"), time.Now().Year())

	if month < 1 || month > 12 {
		utils.ResponseBadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	dates, err := h.service.GetBlockedDates(r.Context(), doctorID, time.Month(month), year)
	if err != nil {
		h.handleServiceError(w, err, "get blocked dates")
		return
	}

	utils.ResponseSuccess(w, "success", dates)
}

func (h *AvailabilityHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
