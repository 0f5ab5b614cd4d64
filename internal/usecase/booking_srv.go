package usecase

import (
	"context"
	"fmt"
	"time"

	"clinic-booking/internal/data/entity"
	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/request"
	"clinic-booking/internal/dto/response"
	"clinic-booking/pkg/utils"

	"go.uber.org/zap"
)

// DepositRate is the share of the service price collected at booking time.
// Policy lives here at the edge of the confirmation flow, not inside it.
const DepositRate = 0.5

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetPatientBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetDoctorBookings(ctx context.Context, doctorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, reason string) error
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	method := entity.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("invalid payment method %s", req.PaymentMethod)
	}

	service, err := s.repo.Service.FindByID(ctx, req.ServiceID)
	if err != nil || service == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	doctor, err := s.repo.Doctor.FindByID(ctx, req.DoctorID)
	if err != nil || doctor == nil {
		return nil, fmt.Errorf("doctor %s not found", req.DoctorID)
	}

	if !doctor.ProvidesService(service.ID) {
		return nil, fmt.Errorf("doctor %s does not provide service %s", doctor.ID, service.ID)
	}

	draft := &entity.Appointment{
		PatientID:   userID,
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge,
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		ServiceID:   service.ID,
		ServiceName: service.Specialization,
		Date:        req.Date,
		Time:        req.Time,
		Status:      entity.AppointmentStatusUpcoming,
		Price:       service.Price,
	}

	deposit := service.Price * DepositRate

	bookingID, err := s.confirmBooking(ctx, draft, method, deposit)
	if err != nil {
		return nil, err
	}

	payment, _ := s.repo.Payment.FindByBookingID(ctx, bookingID)

	resp := response.AppointmentToResponse(draft)
	if payment != nil {
		paymentResp := response.PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}

	return &resp, nil
}

// confirmBooking allocates a booking ID, stamps the draft with the server
// clock, and persists appointment + deposit payment as one atomic batch.
// There is no retry; the caller decides whether to try again.
func (s *bookingService) confirmBooking(ctx context.Context, appt *entity.Appointment, method entity.PaymentMethod, totalAmount float64) (string, error) {
	bookingID, sequential := s.allocateBookingID(ctx)

	now := time.Now()

	appt.ID = bookingID
	// Server clock wins over anything the caller supplied, so ordering does
	// not depend on client clocks.
	appt.CreatedAt = now

	payment := &entity.Payment{
		ID:            utils.GenerateUUIDString(),
		BookingID:     bookingID,
		Amount:        totalAmount,
		Method:        method,
		Status:        entity.PaymentStatusCompleted,
		TransactionID: utils.GenerateTransactionRef(),
		CreatedAt:     now,
	}

	if err := s.repo.Appointment.CreateWithPayment(ctx, appt, payment); err != nil {
		s.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("patient_id", appt.PatientID),
		)
		return "", fmt.Errorf("confirm booking: %w", err)
	}

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.Bool("sequential_id", sequential),
		zap.String("patient_id", appt.PatientID),
		zap.String("doctor_id", appt.DoctorID),
		zap.Float64("deposit", totalAmount),
		zap.String("method", string(method)),
	)

	return bookingID, nil
}

// allocateBookingID tries the sequential counter first and falls back to a
// random unique ID. Confirmation must not fail just because the counter is
// contended or unreachable.
func (s *bookingService) allocateBookingID(ctx context.Context) (string, bool) {
	n, err := s.repo.Counter.Next(ctx, entity.BookingCounter)
	if err != nil {
		s.log.Warn("Sequential booking ID unavailable, using fallback",
			zap.Error(err),
		)
		return utils.GenerateFallbackID(), false
	}
	return utils.FormatSequentialID(entity.BookingIDPrefix, entity.BookingIDWidth, n), true
}

func (s *bookingService) GetPatientBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	appointments, err := s.repo.Appointment.FindByPatientID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get patient bookings",
			zap.Error(err),
			zap.String("patient_id", userID),
		)
		return nil, fmt.Errorf("get patient bookings: %w", err)
	}

	total, err := s.repo.Appointment.CountByPatientID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count patient bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, appointments), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetDoctorBookings(ctx context.Context, doctorID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	appointments, err := s.repo.Appointment.FindByDoctorID(ctx, doctorID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get doctor bookings",
			zap.Error(err),
			zap.String("doctor_id", doctorID),
		)
		return nil, fmt.Errorf("get doctor bookings: %w", err)
	}

	total, err := s.repo.Appointment.CountByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("count doctor bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, appointments), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	appt, err := s.repo.Appointment.FindByID(ctx, bookingID)
	if err != nil || appt == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.AppointmentToResponse(appt)

	payment, _ := s.repo.Payment.FindByBookingID(ctx, appt.ID)
	if payment != nil {
		paymentResp := response.PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}

	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, reason string) error {
	appt, err := s.repo.Appointment.FindByID(ctx, bookingID)
	if err != nil || appt == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if appt.IsCancelled {
		return fmt.Errorf("booking %s is already cancelled, cannot cancel again", bookingID)
	}

	off := &entity.TimeOff{
		ID:         s.allocateTimeOffID(ctx),
		DoctorID:   appt.DoctorID,
		DoctorName: appt.DoctorName,
		BookingID:  bookingID,
		Date:       appt.Date,
		Time:       appt.Time,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}

	// Cancellation flag and the freed slot commit together; a cancelled
	// booking without its time-off record must never be observable.
	if err := s.repo.Appointment.CancelWithTimeOff(ctx, bookingID, reason, off); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("time_off_id", off.ID),
		zap.String("reason", reason),
	)

	return nil
}

func (s *bookingService) allocateTimeOffID(ctx context.Context) string {
	n, err := s.repo.Counter.Next(ctx, entity.TimeOffCounter)
	if err != nil {
		s.log.Warn("Sequential time-off ID unavailable, using fallback",
			zap.Error(err),
		)
		return utils.GenerateFallbackID()
	}
	return utils.FormatSequentialID(entity.TimeOffIDPrefix, entity.TimeOffIDWidth, n)
}

func (s *bookingService) toResponses(ctx context.Context, appointments []*entity.Appointment) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(appointments))
	for i, appt := range appointments {
		responses[i] = response.AppointmentToResponse(appt)

		payment, _ := s.repo.Payment.FindByBookingID(ctx, appt.ID)
		if payment != nil {
			paymentResp := response.PaymentToResponse(payment)
			responses[i].Payment = &paymentResp
		}
	}
	return responses
}
