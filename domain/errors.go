package domain

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches. A missing
	// application for an identity is a normal outcome, not a failure.
	ErrNotFound = errors.New("not found")

	ErrInvalidIncome      = errors.New("monthly income must be positive")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrDraftNotFound      = errors.New("draft not found")
)
