package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"equiprent-backend/internal/domain"
)

// MockEquipmentRepo
type MockEquipmentRepo struct {
	mock.Mock
}

func (m *MockEquipmentRepo) All(ctx context.Context) ([]domain.EquipmentItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquipmentItem), args.Error(1)
}
func (m *MockEquipmentRepo) GetByID(ctx context.Context, id int32) (*domain.EquipmentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EquipmentItem), args.Error(1)
}
func (m *MockEquipmentRepo) Loaded() bool {
	args := m.Called()
	return args.Bool(0)
}
func (m *MockEquipmentRepo) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockReviewRepo
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Prepend(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}
func (m *MockReviewRepo) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}
