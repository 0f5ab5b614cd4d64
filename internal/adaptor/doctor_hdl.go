package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	service usecase.DoctorService
	log     *zap.Logger
}

func NewDoctorHandler(service usecase.DoctorService, log *zap.Logger) *DoctorHandler {
	return &DoctorHandler{
		service: service,
		log:     log.With(zap.String("handler", "doctor")),
	}
}

// GetDoctors handles GET /api/doctors (public)
func (h *DoctorHandler) GetDoctors(w http.ResponseWriter, r *http.Request) {
	// Optional filter by service
	serviceID := r.URL.Query().Get("service_id")

	if serviceID != "" {
		doctors, err := h.service.GetDoctorsByService(r.Context(), serviceID)
		if err != nil {
			h.handleServiceError(w, err, "get doctors by service")
			return
		}
		utils.ResponseSuccess(w, "success", doctors)
		return
	}

	doctors, err := h.service.GetDoctors(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get doctors")
		return
	}

	utils.ResponseSuccess(w, "success", doctors)
}

// GetDoctorByID handles GET /api/doctors/{id} (public)
func (h *DoctorHandler) GetDoctorByID(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")
	if doctorID == "" {
		utils.ResponseBadRequest(w, "Doctor ID is required", nil)
		return
	}

	doctor, err := h.service.GetDoctorByID(r.Context(), doctorID)
	if err != nil {
		h.handleServiceError(w, err, "get doctor by ID")
		return
	}

	utils.ResponseSuccess(w, "success", doctor)
}

// GetDoctorTimeOff handles GET /api/doctors/{id}/time-off (public)
func (h *DoctorHandler) GetDoctorTimeOff(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "id")
	if doctorID == "" {
		utils.ResponseBadRequest(w, "Doctor ID is required", nil)
		return
	}

	timeOff, err := h.service.GetTimeOff(r.Context(), doctorID)
	if err != nil {
		h.handleServiceError(w, err, "get doctor time off")
		return
	}

	utils.ResponseSuccess(w, "success", timeOff)
}

// ==================== STAFF METHODS ====================

// CreateDoctor handles POST /api/staff/doctors (staff only)
func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	doctor, err := h.service.CreateDoctor(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create doctor")
		return
	}

	utils.ResponseCreated(w, "success", doctor)
}

// AddTimeOff handles POST /api/staff/time-off (staff only)
func (h *DoctorHandler) AddTimeOff(w http.ResponseWriter, r *http.Request) {
	var req request.AddTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	timeOff, err := h.service.AddTimeOff(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add time off")
		return
	}

	utils.ResponseCreated(w, "success", timeOff)
}

// RemoveTimeOff handles DELETE /api/staff/time-off/{id} (staff only)
func (h *DoctorHandler) RemoveTimeOff(w http.ResponseWriter, r *http.Request) {
	timeOffID := chi.URLParam(r, "id")
	if timeOffID == "" {
		utils.ResponseBadRequest(w, "Time off ID is required", nil)
		return
	}

	if err := h.service.RemoveTimeOff(r.Context(), timeOffID); err != nil {
		h.handleServiceError(w, err, "remove time off")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk doctor operations
func (h *DoctorHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

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
