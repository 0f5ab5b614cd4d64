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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	n, err := s.repo.Counter.Next(ctx, entity.UserCounter)
	if err != nil {
		return nil, fmt.Errorf("allocate user ID: %w", err)
	}

	user := &entity.User{
		ID:           utils.FormatSequentialID(entity.UserIDPrefix, entity.UserIDWidth, n),
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FullName:     req.FullName,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Role:         entity.RolePatient,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &response.AuthResponse{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ipAddress string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return nil, fmt.Errorf("login failed")
	}

	if user == nil || !utils.CheckPassword(user.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid email or password")
	}

	if user.Status != entity.UserStatusActive {
		return nil, fmt.Errorf("account is not active, cannot login")
	}

	now := time.Now()
	session := &entity.Session{
		ID:        utils.GenerateUUID(),
		UserID:    user.ID,
		Role:      user.Role,
		Token:     utils.GenerateSessionToken(),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
		CreatedAt: now,
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))

	return &response.AuthResponse{
		UserID:    user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      string(user.Role),
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}
