package errors

import "net/http"

// Validation
var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Request validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Invalid GeoJSON geometry",
		http.StatusBadRequest,
	)

	ErrInvalidTimeRange = New(
		"INVALID_TIME_RANGE",
		"Invalid time range",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)
)

// Not found
var (
	ErrBusStopNotFound = New(
		"BUS_STOP_NOT_FOUND",
		"Bus stop not found",
		http.StatusNotFound,
	)

	ErrBusLineNotFound = New(
		"BUS_LINE_NOT_FOUND",
		"Bus line not found",
		http.StatusNotFound,
	)

	ErrCompanyNotFound = New(
		"COMPANY_NOT_FOUND",
		"Company not found",
		http.StatusNotFound,
	)

	ErrStopLineNotFound = New(
		"STOP_LINE_NOT_FOUND",
		"Stop line not found",
		http.StatusNotFound,
	)

	ErrScheduleNotFound = New(
		"SCHEDULE_NOT_FOUND",
		"Bus line schedule not found",
		http.StatusNotFound,
	)
)

// Conflict
var (
	ErrDuplicateAssociation = New(
		"DUPLICATE_ASSOCIATION",
		"Stop line already exists with same estimated time",
		http.StatusConflict,
	)

	ErrHasDependents = New(
		"HAS_DEPENDENTS",
		"Entity is still referenced by other records",
		http.StatusConflict,
	)
)

// Internal
var (
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

	ErrServiceUnavailable = New(
		"SERVICE_UNAVAILABLE",
		"Service temporarily unavailable",
		http.StatusServiceUnavailable,
	)
)
