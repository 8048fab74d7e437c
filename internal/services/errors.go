// Package services defines the business logic for contact form intake.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and translation
// into user-facing messages or HTTP status codes should be performed at the
// handler/controller layer.
package services

import "errors"

// Submission validation errors.
var (
	// ErrMissingFields is returned when one or more of the required fields
	// (name, email, phone, service) is absent or empty.
	ErrMissingFields = errors.New("required fields missing")

	// ErrInvalidEmail is returned when the submitted email address fails the
	// syntactic sanity check (no @, no domain dot, or embedded whitespace).
	ErrInvalidEmail = errors.New("invalid email address")
)
