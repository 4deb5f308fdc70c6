package overpass

import (
	"context"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cafe-finder/internal/config"
	"github.com/cafe-finder/internal/domain"
	"github.com/cafe-finder/internal/domain/repository"
	"github.com/cafe-finder/internal/pkg/errors"
	"github.com/cafe-finder/internal/pkg/metrics"
	"go.uber.org/zap"
)

const (
	formContentType = "application/x-www-form-urlencoded; charset=UTF-8"
	userAgent       = "cafe-finder/1.0"

	// maxBodySize caps how much of an upstream body is read.
	maxBodySize = 32 << 20
	// maxErrorBodyDetail caps the upstream body echoed in error details.
	maxErrorBodyDetail = 2048
)

type client struct {
	httpClient   *http.Client
	baseURL      string
	queryTimeout time.Duration
	logger       *zap.Logger
}

// NewOverpassClient создает новый клиент для Overpass API
func NewOverpassClient(cfg *config.OverpassConfig, logger *zap.Logger) repository.OverpassRepository {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout: cfg.ConnectTimeout,
		MaxIdleConns:        16,
		IdleConnTimeout:     90 * time.Second,
	}

	return &client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		baseURL:      cfg.URL,
		queryTimeout: cfg.QueryTimeout,
		logger:       logger,
	}
}

// FindCafes выполняет один POST запрос к Overpass и разбирает ответ
func (c *client) FindCafes(ctx context.Context, bbox domain.BoundingBox, limit int) ([]domain.Cafe, error) {
	query := buildCafeQuery(bbox, c.queryTimeout)
	form := url.Values{"data": {query}}

	c.logger.Debug("Calling Overpass API",
		zap.String("url", c.baseURL),
		zap.Float64("sw_lat", bbox.SwLat),
		zap.Float64("sw_lng", bbox.SwLng),
		zap.Float64("ne_lat", bbox.NeLat),
		zap.Float64("ne_lng", bbox.NeLng),
		zap.Int("limit", limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrInternalServer.Wrap(err)
	}
	req.Header.Set("Content-Type", formContentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.OverpassRequests.WithLabelValues(metrics.OutcomeTransport).Inc()
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	metrics.OverpassRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OverpassRequests.WithLabelValues(metrics.OutcomeTransport).Inc()
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, transportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.OverpassRequests.WithLabelValues(metrics.OutcomeHTTPError).Inc()
		c.logger.Error("Overpass API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrUpstreamHTTP.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
			"body":        truncate(string(body), maxErrorBodyDetail),
		})
	}

	cafes, err := parseCafes(body, limit)
	if err != nil {
		metrics.OverpassRequests.WithLabelValues(metrics.OutcomeMalformed).Inc()
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrMalformedResponse.Wrap(err)
	}

	metrics.OverpassRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	c.logger.Debug("Overpass API call successful",
		zap.Int("cafes", len(cafes)),
		zap.Duration("elapsed", time.Since(start)))

	return cafes, nil
}

// transportError classifies a failed round trip; timeouts answer 504.
func transportError(err error) error {
	appErr := errors.ErrUpstreamUnavailable.Wrap(err)

	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return appErr.WithStatus(http.StatusGatewayTimeout)
	}
	return appErr
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.ToValidUTF8(s[:n], "") + "..."
}
