package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cafe-finder/internal/domain"
)

type MockOverpassRepository struct {
	mock.Mock
}

func (m *MockOverpassRepository) FindCafes(ctx context.Context, bbox domain.BoundingBox, limit int) ([]domain.Cafe, error) {
	args := m.Called(ctx, bbox, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cafe), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordSearch(ctx context.Context, record domain.SearchRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchStatistics), args.Error(1)
}
