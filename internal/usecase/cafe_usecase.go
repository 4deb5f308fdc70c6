package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cafe-finder/internal/domain"
	"github.com/cafe-finder/internal/domain/repository"
	"github.com/cafe-finder/internal/pkg/errors"
	"github.com/cafe-finder/internal/pkg/metrics"
	"github.com/cafe-finder/internal/usecase/dto"
)

// CafeUseCase - поиск кафе в bounding box через Overpass
type CafeUseCase struct {
	overpassRepo repository.OverpassRepository
	statsRepo    repository.StatsRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewCafeUseCase - создание нового CafeUseCase. statsRepo может быть nil,
// тогда статистика не собирается.
func NewCafeUseCase(
	overpassRepo repository.OverpassRepository,
	statsRepo repository.StatsRepository,
	logger *zap.Logger,
) *CafeUseCase {
	return &CafeUseCase{
		overpassRepo: overpassRepo,
		statsRepo:    statsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// FindCafesInBbox возвращает до limit кафе внутри bbox.
// Слишком большая область отклоняется без обращения к Overpass.
func (uc *CafeUseCase) FindCafesInBbox(ctx context.Context, req dto.CafeSearchRequest) ([]domain.Cafe, error) {
	limit := domain.ClampCafeLimit(req.Limit)

	if req.BBox.TooLarge() {
		metrics.SearchesRejected.Inc()
		uc.recordSearch(ctx, domain.SearchOutcomeInvalidArea, 0)
		return nil, errors.ErrInvalidArea.WithDetails(map[string]interface{}{
			"lat_span": req.BBox.LatSpan(),
			"lng_span": req.BBox.LngSpan(),
			"max_span": domain.MaxBBoxSpanDegrees,
		})
	}

	cafes, err := uc.overpassRepo.FindCafes(ctx, req.BBox, limit)
	if err != nil {
		uc.logger.Warn("Failed to find cafes",
			zap.Float64("sw_lat", req.BBox.SwLat),
			zap.Float64("sw_lng", req.BBox.SwLng),
			zap.Float64("ne_lat", req.BBox.NeLat),
			zap.Float64("ne_lng", req.BBox.NeLng),
			zap.Error(err))
		uc.recordSearch(ctx, domain.SearchOutcomeUpstreamFailure, 0)
		return nil, err
	}

	// Overpass client already stops at limit; keep the bound here too.
	if len(cafes) > limit {
		cafes = cafes[:limit]
	}

	metrics.CafesReturned.Observe(float64(len(cafes)))
	uc.recordSearch(ctx, domain.SearchOutcomeSuccess, len(cafes))

	return cafes, nil
}

// recordSearch is best effort: a statistics failure never fails the search.
func (uc *CafeUseCase) recordSearch(ctx context.Context, outcome domain.SearchOutcome, count int) {
	if uc.statsRepo == nil {
		return
	}

	err := uc.statsRepo.RecordSearch(ctx, domain.SearchRecord{
		Outcome:   outcome,
		CafeCount: count,
		At:        uc.now(),
	})
	if err != nil {
		uc.logger.Warn("Failed to record search statistics", zap.Error(err))
	}
}
