package usecase

import (
	"context"
	"fmt"

	"clinic-booking/internal/data/repository"
	"clinic-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	GetServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetServiceByID(ctx context.Context, id string) (*response.ServiceResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}

	responses := make([]response.ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = response.ServiceToResponse(service)
	}

	return responses, nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, id string) (*response.ServiceResponse, error) {
	service, err := s.repo.Service.FindByID(ctx, id)
	if err != nil || service == nil {
		return nil, fmt.Errorf("service %s not found", id)
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}
