// Package apperr defines sentinel errors shared across the application.
package apperr

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfirmed       = errors.New("destructive action not confirmed")
	ErrFileTooLarge       = errors.New("file too large")
)
