package services

import "errors"

// Sentinel error kinds. Controllers translate these to status codes with
// errors.Is; wording stays out of control flow.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")
	ErrValidation        = errors.New("validation failed")
	ErrExternal          = errors.New("external service failure")
)
