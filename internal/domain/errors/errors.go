package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
//
// ErrTaskNotFound and ErrProjectNotFound cover both a missing row and a row
// owned by another user; callers cannot tell the two apart, so resource ids
// never leak across owners.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrValidation         = errors.New("invalid input")
)
