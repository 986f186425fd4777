// Package common defines shared constants and sentinel errors used across
// client and server layers of the peer review service. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrVersionConflict signals that an optimistic update lost a race and
	// should be retried by the caller. It never crosses the transport layer.
	ErrVersionConflict = errors.New("version conflict")

	// Validation errors (oversized or malformed input fields).
	ErrInvalidInput = errors.New("invalid input")

	// Lifecycle / escrow errors.
	ErrDuplicateEntry    = errors.New("duplicate entry")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrStateConflict     = errors.New("state conflict")
	ErrQuorumNotMet      = errors.New("quorum not met")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPartialPayout reports that a manuscript was finalized and its escrow
	// settled, but one or more reviewer rewards could not be paid. The verdict
	// stands; the unpaid rewards are retriable by an external process.
	ErrPartialPayout = errors.New("partial payout failure")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
