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

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *request.CreateDoctorRequest) (*response.DoctorResponse, error)
	GetDoctors(ctx context.Context) ([]response.DoctorResponse, error)
	GetDoctorByID(ctx context.Context, id string) (*response.DoctorResponse, error)
	GetDoctorsByService(ctx context.Context, serviceID string) ([]response.DoctorResponse, error)

	AddTimeOff(ctx context.Context, req *request.AddTimeOffRequest) (*response.TimeOffResponse, error)
	GetTimeOff(ctx context.Context, doctorID string) ([]response.TimeOffResponse, error)
	RemoveTimeOff(ctx context.Context, id string) error
}

type doctorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDoctorService(repo *repository.Repository, log *zap.Logger) DoctorService {
	return &doctorService{
		repo: repo,
		log:  log.With(zap.String("service", "doctor")),
	}
}

func (s *doctorService) CreateDoctor(ctx context.Context, req *request.CreateDoctorRequest) (*response.DoctorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create doctor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	for _, serviceID := range req.ServiceIDs {
		service, err := s.repo.Service.FindByID(ctx, serviceID)
		if err != nil || service == nil {
			return nil, fmt.Errorf("service %s not found", serviceID)
		}
	}

	// Doctor IDs are sequential only; registration is staff-driven and may
	// fail loudly rather than fall back to an unreadable ID.
	n, err := s.repo.Counter.Next(ctx, entity.DoctorCounter)
	if err != nil {
		return nil, fmt.Errorf("allocate doctor ID: %w", err)
	}

	doctor := &entity.Doctor{
		ID:                utils.FormatSequentialID(entity.DoctorIDPrefix, entity.DoctorIDWidth, n),
		Name:              req.Name,
		Specialization:    req.Specialization,
		Gender:            req.Gender,
		YearsOfExperience: req.YearsOfExperience,
		Description:       req.Description,
		Rating:            5.0,
		ProfileImageURL:   req.ProfileImageURL,
		ServiceIDs:        req.ServiceIDs,
		CreatedAt:         time.Now(),
	}

	if err := s.repo.Doctor.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("create doctor: %w", err)
	}

	s.log.Info("Doctor created",
		zap.String("doctor_id", doctor.ID),
		zap.String("specialization", doctor.Specialization),
	)

	resp := response.DoctorToResponse(doctor)
	return &resp, nil
}

func (s *doctorService) GetDoctors(ctx context.Context) ([]response.DoctorResponse, error) {
	doctors, err := s.repo.Doctor.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get doctors: %w", err)
	}

	responses := make([]response.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = response.DoctorToResponse(doctor)
	}

	return responses, nil
}

func (s *doctorService) GetDoctorByID(ctx context.Context, id string) (*response.DoctorResponse, error) {
	doctor, err := s.repo.Doctor.FindByID(ctx, id)
	if err != nil || doctor == nil {
		return nil, fmt.Errorf("doctor %s not found", id)
	}

	resp := response.DoctorToResponse(doctor)
	return &resp, nil
}

func (s *doctorService) GetDoctorsByService(ctx context.Context, serviceID string) ([]response.DoctorResponse, error) {
	doctors, err := s.repo.Doctor.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get doctors by service %s: %w", serviceID, err)
	}

	responses := make([]response.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = response.DoctorToResponse(doctor)
	}

	return responses, nil
}

func (s *doctorService) AddTimeOff(ctx context.Context, req *request.AddTimeOffRequest) (*response.TimeOffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add time off validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	doctor, err := s.repo.Doctor.FindByID(ctx, req.DoctorID)
	if err != nil || doctor == nil {
		return nil, fmt.Errorf("doctor %s not found", req.DoctorID)
	}

	off := &entity.TimeOff{
		ID:         s.allocateTimeOffID(ctx),
		DoctorID:   doctor.ID,
		DoctorName: doctor.Name,
		Date:       req.Date,
		Time:       req.Time,
		Reason:     req.Reason,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.TimeOff.Create(ctx, off); err != nil {
		return nil, fmt.Errorf("add time off: %w", err)
	}

	s.log.Info("Time off added",
		zap.String("time_off_id", off.ID),
		zap.String("doctor_id", off.DoctorID),
		zap.String("date", off.Date),
	)

	resp := response.TimeOffToResponse(off)
	return &resp, nil
}

func (s *doctorService) GetTimeOff(ctx context.Context, doctorID string) ([]response.TimeOffResponse, error) {
	offs, err := s.repo.TimeOff.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("get time off for doctor %s: %w", doctorID, err)
	}

	responses := make([]response.TimeOffResponse, len(offs))
	for i, off := range offs {
		responses[i] = response.TimeOffToResponse(off)
	}

	return responses, nil
}

func (s *doctorService) RemoveTimeOff(ctx context.Context, id string) error {
	if err := s.repo.TimeOff.Delete(ctx, id); err != nil {
		return fmt.Errorf("remove time off %s: %w", id, err)
	}

	s.log.Info("Time off removed", zap.String("time_off_id", id))
	return nil
}

func (s *doctorService) allocateTimeOffID(ctx context.Context) string {
	n, err := s.repo.Counter.Next(ctx, entity.TimeOffCounter)
	if err != nil {
		s.log.Warn("Sequential time-off ID unavailable, using fallback",
			zap.Error(err),
		)
		return utils.GenerateFallbackID()
	}
	return utils.FormatSequentialID(entity.TimeOffIDPrefix, entity.TimeOffIDWidth, n)
}
