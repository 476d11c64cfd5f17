package jwtdecode

import (
	"errors"
	"fmt"
)

// Predefined errors for common decode operations
var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Token errors
	ErrEmptyToken         = errors.New("empty token: token string cannot be empty")
	ErrTokenTooLarge      = errors.New("token too large")
	ErrInvalidTokenFormat = errors.New("invalid token format: expected three dot-separated segments")

	// Claim errors
	ErrNoExpiry    = errors.New("token has no usable exp claim")
	ErrNoIssuedAt  = errors.New("token has no usable iat claim")
	ErrNoNotBefore = errors.New("token has no usable nbf claim")
)

// SegmentError reports a decode failure in a specific token segment.
// It wraps the underlying base64url/UTF-8/JSON error.
type SegmentError struct {
	Segment string // "header" or "payload"
	Err     error  // Underlying error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("failed to decode %s segment: %v", e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
