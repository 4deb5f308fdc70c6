package repository

import (
	"context"

	"github.com/cafe-finder/internal/domain"
)

// OverpassRepository определяет методы для работы с Overpass API
type OverpassRepository interface {
	// FindCafes возвращает не более limit кафе внутри bbox в порядке,
	// в котором их вернул Overpass. limit должен быть уже ограничен.
	FindCafes(ctx context.Context, bbox domain.BoundingBox, limit int) ([]domain.Cafe, error)
}
