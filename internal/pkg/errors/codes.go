package errors

import "net/http"

var (
	ErrMapNotFound = New(
		"MAP_NOT_FOUND",
		"Map variant not found",
		http.StatusNotFound,
	)

	ErrMapUnavailable = New(
		"MAP_UNAVAILABLE",
		"Map data is not loaded",
		http.StatusServiceUnavailable,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Session not found",
		http.StatusNotFound,
	)

	ErrInvalidSessionID = New(
		"INVALID_SESSION_ID",
		"Invalid session ID",
		http.StatusBadRequest,
	)

	ErrInvalidEvent = New(
		"INVALID_EVENT",
		"Unsupported control for this map",
		http.StatusBadRequest,
	)

	ErrInvalidDataset = New(
		"INVALID_DATASET",
		"Map document has an invalid structure",
		http.StatusInternalServerError,
	)

	ErrSourceError = New(
		"SOURCE_ERROR",
		"Failed to fetch map document",
		http.StatusBadGateway,
	)

	ErrSessionStoreError = New(
		"SESSION_STORE_ERROR",
		"Session store operation failed",
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
