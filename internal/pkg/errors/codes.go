package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrTooManyLocations = New(
		"TOO_MANY_LOCATIONS",
		"Too many locations in one route",
		http.StatusBadRequest,
	)

	ErrRouteOptimizationFailed = New(
		"ROUTE_OPTIMIZATION_FAILED",
		"Could not optimize route",
		http.StatusInternalServerError,
	)

	ErrRoutePlanNotFound = New(
		"ROUTE_PLAN_NOT_FOUND",
		"Route plan not found",
		http.StatusNotFound,
	)

	ErrGeocodeNotFound = New(
		"GEOCODE_NOT_FOUND",
		"Address not found",
		http.StatusNotFound,
	)

	ErrGeocodeFailed = New(
		"GEOCODE_FAILED",
		"Could not geocode address",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
