package apperrors

import "errors"

var (
	ErrEndpointNotFound      = errors.New("endpoint not found")
	ErrEndpointAlreadyExists = errors.New("endpoint already exists")
	ErrInvalidURL            = errors.New("invalid url")
	ErrInvalidInterval       = errors.New("invalid ping interval")
	ErrInvalidPermission     = errors.New("invalid notification permission")
	ErrStoreConflict         = errors.New("store write conflict")

	// ErrNoChange is returned by a list mutation that decided not to write anything.
	ErrNoChange = errors.New("no change")
)
