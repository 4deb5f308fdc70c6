package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/metrics", Handler())
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ping", "200"))

	resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/ping", "200"))
	assert.Equal(t, before+1, after)

	OverpassRequests.WithLabelValues(OutcomeSuccess).Inc()

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "cafe_finder_http_requests_total")
	assert.Contains(t, string(body), `cafe_finder_overpass_requests_total{outcome="success"}`)
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	app := fiber.New()
	app.Use(Middleware())
	app.Get("/gone", func(c *fiber.Ctx) error {
		return fiber.ErrGone
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/gone", "410"))

	resp, err := app.Test(httptest.NewRequest("GET", "/gone", nil))
	require.NoError(t, err)
	assert.Equal(t, 410, resp.StatusCode)

	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/gone", "410"))
	assert.Equal(t, before+1, after)
}
