package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafe-finder/internal/domain"
)

func TestCafesQuery_ToRequest(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		q := CafesQuery{SwLat: "40.7", SwLng: "-74.02", NeLat: "40.8", NeLng: "-73.9"}

		req, err := q.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, domain.BoundingBox{SwLat: 40.7, SwLng: -74.02, NeLat: 40.8, NeLng: -73.9}, req.BBox)
		assert.Equal(t, 50, req.Limit)
	})

	t.Run("explicit limit is passed through unclamped", func(t *testing.T) {
		q := CafesQuery{SwLat: "1", SwLng: "2", NeLat: "1.5", NeLng: "2.5", Limit: "500"}

		req, err := q.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, 500, req.Limit)
	})

	t.Run("fractional limit", func(t *testing.T) {
		q := CafesQuery{SwLat: "1", SwLng: "2", NeLat: "1.5", NeLng: "2.5", Limit: "5.5"}

		_, err := q.ToRequest()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "limit")
	})

	t.Run("bad coordinate", func(t *testing.T) {
		q := CafesQuery{SwLat: "1", SwLng: "east", NeLat: "1.5", NeLng: "2.5"}

		_, err := q.ToRequest()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "swLng")
	})

	t.Run("any float syntax is accepted", func(t *testing.T) {
		q := CafesQuery{SwLat: ".5", SwLng: "1e-3", NeLat: "40.", NeLng: "+2"}

		req, err := q.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, domain.BoundingBox{SwLat: 0.5, SwLng: 0.001, NeLat: 40, NeLng: 2}, req.BBox)
	})

	t.Run("non-finite coordinate", func(t *testing.T) {
		for _, raw := range []string{"NaN", "Inf", "-Infinity", "1e999"} {
			q := CafesQuery{SwLat: "1", SwLng: "2", NeLat: raw, NeLng: "2.5"}

			_, err := q.ToRequest()
			assert.Error(t, err, raw)
		}
	})
}
