package domain

import "math"

const (
	// MaxBBoxSpanDegrees is the largest latitude or longitude span a search
	// may cover.
	MaxBBoxSpanDegrees = 1.5

	DefaultCafeLimit = 50
	MinCafeLimit     = 1
	MaxCafeLimit     = 200

	// DefaultCafeName is used when an element has no name tag.
	DefaultCafeName = "Cafe"
)

// Cafe - кафе, найденное в OpenStreetMap
type Cafe struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// BoundingBox задаётся юго-западным и северо-восточным углами.
type BoundingBox struct {
	SwLat float64 `json:"sw_lat"`
	SwLng float64 `json:"sw_lng"`
	NeLat float64 `json:"ne_lat"`
	NeLng float64 `json:"ne_lng"`
}

func (b BoundingBox) LatSpan() float64 {
	return math.Abs(b.NeLat - b.SwLat)
}

func (b BoundingBox) LngSpan() float64 {
	return math.Abs(b.NeLng - b.SwLng)
}

// TooLarge reports whether either span exceeds MaxBBoxSpanDegrees.
func (b BoundingBox) TooLarge() bool {
	return b.LatSpan() > MaxBBoxSpanDegrees || b.LngSpan() > MaxBBoxSpanDegrees
}

// ClampCafeLimit приводит лимит к диапазону [MinCafeLimit, MaxCafeLimit].
func ClampCafeLimit(limit int) int {
	if limit < MinCafeLimit {
		return MinCafeLimit
	}
	if limit > MaxCafeLimit {
		return MaxCafeLimit
	}
	return limit
}
