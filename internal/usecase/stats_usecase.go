package usecase

import (
	"context"

	"github.com/cafe-finder/internal/domain"
	"github.com/cafe-finder/internal/domain/repository"
	"github.com/cafe-finder/internal/pkg/errors"
	"go.uber.org/zap"
)

// StatsUseCase отдаёт накопленную статистику поисков
type StatsUseCase struct {
	statsRepo repository.StatsRepository
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(statsRepo repository.StatsRepository, logger *zap.Logger) *StatsUseCase {
	return &StatsUseCase{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetStatistics возвращает статистику из хранилища
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	stats, err := uc.statsRepo.GetStatistics(ctx)
	if err != nil {
		uc.logger.Error("Failed to get search statistics", zap.Error(err))
		return nil, errors.ErrStatsUnavailable.Wrap(err)
	}

	return stats, nil
}
