package validator

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafe-finder/internal/pkg/errors"
	"github.com/cafe-finder/internal/usecase/dto"
)

func TestValidate_CafesQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		q := dto.CafesQuery{SwLat: "40.7", SwLng: "-74.02", NeLat: "40.8", NeLng: "-73.9"}
		assert.NoError(t, Validate(&q))
	})

	t.Run("valid with limit", func(t *testing.T) {
		q := dto.CafesQuery{SwLat: "40.7", SwLng: "-74.02", NeLat: "40.8", NeLng: "-73.9", Limit: "-3"}
		assert.NoError(t, Validate(&q))
	})

	t.Run("coordinates are not format checked", func(t *testing.T) {
		q := dto.CafesQuery{SwLat: ".5", SwLng: "1e-3", NeLat: "40.", NeLng: "abc"}
		assert.NoError(t, Validate(&q))
	})

	t.Run("missing fields and non-numeric limit", func(t *testing.T) {
		q := dto.CafesQuery{SwLat: "40.7", NeLat: "40.8", Limit: "ten"}

		err := Validate(&q)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)

		fields, ok := appErr.Details["fields"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "required", fields["SwLng"])
		assert.Equal(t, "required", fields["NeLng"])
		assert.Equal(t, "numeric", fields["Limit"])
		assert.NotContains(t, fields, "SwLat")
		assert.NotContains(t, fields, "NeLat")
	})
}
