package dto

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cafe-finder/internal/domain"
)

// CafesQuery - query-параметры GET /api/cafes в исходном виде.
// Координаты проверяет только ParseFloat в ToRequest; размер области проверяет use case.
type CafesQuery struct {
	SwLat string `query:"swLat" validate:"required"`
	SwLng string `query:"swLng" validate:"required"`
	NeLat string `query:"neLat" validate:"required"`
	NeLng string `query:"neLng" validate:"required"`
	Limit string `query:"limit" validate:"omitempty,numeric"`
}

// CafeSearchRequest - типизированный запрос на поиск кафе
type CafeSearchRequest struct {
	BBox  domain.BoundingBox
	Limit int
}

// ToRequest converts a validated query. A missing limit becomes
// domain.DefaultCafeLimit.
func (q CafesQuery) ToRequest() (CafeSearchRequest, error) {
	var req CafeSearchRequest

	coords := []struct {
		name  string
		raw   string
		value *float64
	}{
		{"swLat", q.SwLat, &req.BBox.SwLat},
		{"swLng", q.SwLng, &req.BBox.SwLng},
		{"neLat", q.NeLat, &req.BBox.NeLat},
		{"neLng", q.NeLng, &req.BBox.NeLng},
	}
	for _, c := range coords {
		v, err := strconv.ParseFloat(c.raw, 64)
		if err != nil {
			return CafeSearchRequest{}, fmt.Errorf("%s: %w", c.name, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return CafeSearchRequest{}, fmt.Errorf("%s: not a finite number", c.name)
		}
		*c.value = v
	}

	req.Limit = domain.DefaultCafeLimit
	if q.Limit != "" {
		limit, err := strconv.Atoi(q.Limit)
		if err != nil {
			return CafeSearchRequest{}, fmt.Errorf("limit: %w", err)
		}
		req.Limit = limit
	}

	return req, nil
}
