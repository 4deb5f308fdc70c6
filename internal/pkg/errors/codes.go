package errors

import "net/http"

var (
	ErrInvalidArea = New(
		"INVALID_AREA",
		"Area too large. Zoom in and try again.",
		http.StatusBadRequest,
	)

	ErrUpstreamHTTP = New(
		"UPSTREAM_HTTP_ERROR",
		"Overpass API returned an error",
		http.StatusBadGateway,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Overpass API is unreachable",
		http.StatusBadGateway,
	)

	ErrMalformedResponse = New(
		"MALFORMED_UPSTREAM_RESPONSE",
		"Overpass API returned a malformed response",
		http.StatusBadGateway,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrStatsUnavailable = New(
		"STATS_UNAVAILABLE",
		"Search statistics are unavailable",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
