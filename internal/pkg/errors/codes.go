package errors

import "net/http"

var (
	ErrInvalidLine = New(
		"INVALID_LINE",
		"Line must contain at least two stops with valid coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidCap = New(
		"INVALID_CAP",
		"Invalid cap value",
		http.StatusBadRequest,
	)

	ErrInvalidLineID = New(
		"INVALID_LINE_ID",
		"Invalid line ID",
		http.StatusBadRequest,
	)

	ErrLineNotFound = New(
		"LINE_NOT_FOUND",
		"Line not found",
		http.StatusNotFound,
	)

	ErrRoutingFailed = New(
		"ROUTING_FAILED",
		"Routing service could not resolve the route",
		http.StatusBadGateway,
	)

	ErrRouteMismatch = New(
		"ROUTE_MISMATCH",
		"Routed line does not address every stop",
		http.StatusBadGateway,
	)

	ErrDetourComputation = New(
		"DETOUR_COMPUTATION_FAILED",
		"Detour statistics could not be computed",
		http.StatusUnprocessableEntity,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
