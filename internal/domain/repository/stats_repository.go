package repository

import (
	"context"

	"github.com/cafe-finder/internal/domain"
)

// StatsRepository интерфейс для хранения статистики поисков
type StatsRepository interface {
	// RecordSearch учитывает один выполненный поиск
	RecordSearch(ctx context.Context, record domain.SearchRecord) error

	// GetStatistics возвращает накопленную статистику
	GetStatistics(ctx context.Context) (*domain.SearchStatistics, error)
}
