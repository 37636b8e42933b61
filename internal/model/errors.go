package model

import "errors"

// Common errors used across the application
var (
	// Record errors
	ErrRecordNotFound = errors.New("record not found")

	// Identity errors
	ErrIdentityResolution = errors.New("identity could not be resolved")

	// Role errors
	ErrUnrecognizedRole = errors.New("unrecognized role")

	// Session errors
	ErrSessionNotReady = errors.New("session has not finished hydrating")
)
