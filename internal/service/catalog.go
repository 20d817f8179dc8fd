package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alamin516/genius-car-server-sllcommerz/internal/apperr"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/model"
	"github.com/alamin516/genius-car-server-sllcommerz/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListServices(ctx context.Context, search string, order string) ([]*model.Service, error)
	GetService(ctx context.Context, serviceID uint) (*model.Service, error)
}

type catalogServiceImpl struct {
	serviceRepo repository.ServiceRepository
}

func NewCatalogService(
	serviceRepo repository.ServiceRepository,
) CatalogService {
	return &catalogServiceImpl{
		serviceRepo: serviceRepo,
	}
}

func (s *catalogServiceImpl) ListServices(ctx context.Context, search string, order string) ([]*model.Service, error) {
	ascending := order == "asc"

	services, err := s.serviceRepo.Search(ctx, search, ascending)
	if err != nil {
		return nil, apperr.Internal("list services", fmt.Errorf("search services: %w", err))
	}

	return services, nil
}

func (s *catalogServiceImpl) GetService(ctx context.Context, serviceID uint) (*model.Service, error) {
	service, err := s.serviceRepo.FindByID(ctx, serviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("service not found")
	}
	if err != nil {
		return nil, apperr.Internal("get service", fmt.Errorf("find service: %w", err))
	}

	return service, nil
}
