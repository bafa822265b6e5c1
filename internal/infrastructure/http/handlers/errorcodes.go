package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for
// stable client handling.
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeNotFound         = "not_found"
	ErrCodeUnavailable      = "unavailable"
	ErrCodeInternal         = "internal_error"
)
