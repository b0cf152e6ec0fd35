package service

import (
	"context"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
	"equiprent-backend/internal/utils"
)

type catalogService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewCatalogService(equipmentRepo repository.EquipmentRepository) CatalogService {
	return &catalogService{
		equipmentRepo: equipmentRepo,
	}
}

func (s *catalogService) ListEquipment(ctx context.Context, criteria domain.FilterCriteria) ([]domain.EquipmentItem, error) {
	catalog, err := s.equipmentRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return utils.FilterAndSortEquipment(catalog, criteria), nil
}

func (s *catalogService) GetEquipment(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	// Static list matching the catalog's category tags
	return []string{
		string(domain.CategoryEarthmoving),
		string(domain.CategoryLifting),
		string(domain.CategoryConcrete),
		string(domain.CategoryCompaction),
	}, nil
}
