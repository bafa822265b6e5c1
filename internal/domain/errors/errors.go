package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmptyUpdate        = errors.New("no valid fields provided for update")
	ErrAttachmentNotFound = errors.New("attachment file not found")
)
