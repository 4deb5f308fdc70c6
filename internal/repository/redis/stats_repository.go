package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cafe-finder/internal/domain"
	"github.com/cafe-finder/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Поля хеша статистики
const (
	fieldTotal         = "total_searches"
	fieldSuccessful    = "successful_searches"
	fieldInvalidArea   = "invalid_area_rejections"
	fieldUpstream      = "upstream_failures"
	fieldCafesReturned = "cafes_returned"
	fieldLastSearchAt  = "last_search_at"
)

type statsRepository struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewStatsRepository создает хранилище статистики поисков в хеше key
func NewStatsRepository(client *redis.Client, key string, logger *zap.Logger) repository.StatsRepository {
	return &statsRepository{
		client: client,
		key:    key,
		logger: logger,
	}
}

// RecordSearch атомарно обновляет счётчики одной транзакцией
func (r *statsRepository) RecordSearch(ctx context.Context, record domain.SearchRecord) error {
	at := record.At
	if at.IsZero() {
		at = time.Now()
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, r.key, fieldTotal, 1)

		switch record.Outcome {
		case domain.SearchOutcomeSuccess:
			pipe.HIncrBy(ctx, r.key, fieldSuccessful, 1)
			pipe.HIncrBy(ctx, r.key, fieldCafesReturned, int64(record.CafeCount))
		case domain.SearchOutcomeInvalidArea:
			pipe.HIncrBy(ctx, r.key, fieldInvalidArea, 1)
		case domain.SearchOutcomeUpstreamFailure:
			pipe.HIncrBy(ctx, r.key, fieldUpstream, 1)
		}

		pipe.HSet(ctx, r.key, fieldLastSearchAt, at.UTC().Format(time.RFC3339Nano))
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to record search",
			zap.String("key", r.key),
			zap.String("outcome", string(record.Outcome)),
			zap.Error(err))
		return fmt.Errorf("record search: %w", err)
	}

	return nil
}

// GetStatistics читает хеш статистики; отсутствующий ключ даёт нули
func (r *statsRepository) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		r.logger.Error("Failed to read statistics", zap.String("key", r.key), zap.Error(err))
		return nil, fmt.Errorf("read statistics: %w", err)
	}

	stats := &domain.SearchStatistics{
		TotalSearches:         parseCounter(values[fieldTotal]),
		SuccessfulSearches:    parseCounter(values[fieldSuccessful]),
		InvalidAreaRejections: parseCounter(values[fieldInvalidArea]),
		UpstreamFailures:      parseCounter(values[fieldUpstream]),
		CafesReturned:         parseCounter(values[fieldCafesReturned]),
	}

	if raw, ok := values[fieldLastSearchAt]; ok {
		if ts, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			stats.LastSearchAt = &ts
		} else {
			r.logger.Warn("Invalid last_search_at in statistics", zap.String("value", raw))
		}
	}

	return stats, nil
}

func parseCounter(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
