package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_CopiesKeepKind(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")

	wrapped := ErrUpstreamUnavailable.Wrap(cause).WithStatus(http.StatusGatewayTimeout)

	assert.True(t, Is(wrapped, ErrUpstreamUnavailable))
	assert.False(t, Is(wrapped, ErrUpstreamHTTP))
	assert.True(t, stderrors.Is(wrapped, cause))
	assert.Equal(t, http.StatusGatewayTimeout, wrapped.StatusCode)
	assert.Contains(t, wrapped.Error(), "connection refused")

	// sentinel untouched
	assert.Equal(t, http.StatusBadGateway, ErrUpstreamUnavailable.StatusCode)
	assert.Nil(t, ErrUpstreamUnavailable.Unwrap())
}

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	withDetails := ErrUpstreamHTTP.WithDetails(map[string]interface{}{"status_code": 503})

	assert.Equal(t, 503, withDetails.Details["status_code"])
	assert.Nil(t, ErrUpstreamHTTP.Details)
}

func TestAs(t *testing.T) {
	err := fmt.Errorf("find cafes: %w", ErrInvalidArea)

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_AREA", appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)

	_, ok = As(fmt.Errorf("plain"))
	assert.False(t, ok)
}
