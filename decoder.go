// Package jwtdecode decodes compact JWT tokens without verifying their
// signatures. It extracts claims and derives expiry-relative facts from
// them; cryptographic verification is deliberately out of scope.
package jwtdecode

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cybergodev/jwtdecode/internal/core"
)

// Decoder decodes compact JWTs and answers expiry questions about them.
// All methods are safe for concurrent use: a Decoder holds only immutable
// configuration, and every operation works on its own input.
type Decoder struct {
	clock            func() time.Time
	leeway           time.Duration
	maxTokenLength   int
	maxSegmentLength int
	logger           *slog.Logger
	debug            bool
}

// New creates a new Decoder with optional configuration
func New(config ...Config) (*Decoder, error) {
	cfg := DefaultConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.MaxTokenLength == 0 {
		cfg.MaxTokenLength = core.DefaultMaxTokenLength
	}
	if cfg.MaxSegmentLength == 0 {
		cfg.MaxSegmentLength = core.DefaultMaxSegmentLength
	}

	return &Decoder{
		clock:            cfg.Clock,
		leeway:           cfg.Leeway,
		maxTokenLength:   cfg.MaxTokenLength,
		maxSegmentLength: cfg.MaxSegmentLength,
		logger:           cfg.Logger,
		debug:            cfg.Debug,
	}, nil
}

// DecodePayload decodes the payload segment of a compact token into
// Claims. The header is not touched. Malformed input of any kind yields an
// error, never a panic.
func (d *Decoder) DecodePayload(token string) (Claims, error) {
	if err := d.checkSize(token); err != nil {
		return nil, err
	}

	var claims Claims
	if err := core.DecodePayloadSegment(token, d.maxSegmentLength, &claims); err != nil {
		mapped := mapCoreError(err)
		d.debugLog("payload decode failed", mapped)
		return nil, mapped
	}

	return claims, nil
}

// Decode decodes the header and payload segments and carries the
// signature segment through as opaque base64url text. A failure in either
// segment fails the whole call.
func (d *Decoder) Decode(token string) (*DecodedToken, error) {
	if err := d.checkSize(token); err != nil {
		return nil, err
	}

	var claims Claims
	tok, err := core.DecodeUnverified(token, d.maxSegmentLength, &claims)
	if err != nil {
		mapped := mapCoreError(err)
		d.debugLog("token decode failed", mapped)
		return nil, mapped
	}

	return &DecodedToken{
		Header:    tok.Header,
		Payload:   claims,
		Signature: tok.Signature,
		Raw:       tok.Raw,
	}, nil
}

// mapCoreError translates internal decode errors into the package's
// public error surface.
func mapCoreError(err error) error {
	if errors.Is(err, core.ErrInvalidFormat) {
		return ErrInvalidTokenFormat
	}

	var segErr *core.SegmentError
	if errors.As(err, &segErr) {
		return &SegmentError{Segment: segErr.Segment, Err: segErr.Err}
	}

	return err
}

// IsExpired reports whether the token's exp claim lies before now+offset.
// It is fail-safe: an undecodable token or a missing/non-numeric exp claim
// reports true. A positive offset asks "will this expire within offset
// from now" (refresh-ahead checks); a negative offset asks about a past
// instant.
func (d *Decoder) IsExpired(token string, offset time.Duration) bool {
	claims, err := d.DecodePayload(token)
	if err != nil {
		return true
	}
	return d.ClaimsExpired(claims, offset)
}

// ClaimsExpired is IsExpired for already-decoded claims
func (d *Decoder) ClaimsExpired(claims Claims, offset time.Duration) bool {
	if claims == nil {
		return true
	}

	exp, ok := claims.dateSeconds(ClaimExpiresAt)
	if !ok {
		return true
	}

	now := unixSeconds(d.clock())
	return exp < now+offset.Seconds()-d.leeway.Seconds()
}

// RemainingTime returns the time until the token's exp claim, clamped to
// zero for an already-expired token. An exp of +Inf yields the maximum
// representable Duration rather than a "never expires" sentinel.
func (d *Decoder) RemainingTime(token string) (time.Duration, error) {
	claims, err := d.DecodePayload(token)
	if err != nil {
		return 0, err
	}
	return d.ClaimsRemainingTime(claims)
}

// ClaimsRemainingTime is RemainingTime for already-decoded claims
func (d *Decoder) ClaimsRemainingTime(claims Claims) (time.Duration, error) {
	exp, ok := claims.dateSeconds(ClaimExpiresAt)
	if !ok {
		return 0, ErrNoExpiry
	}
	return durationFromSeconds(exp - unixSeconds(d.clock())), nil
}

// ExpirationDate returns the token's exp claim as a wall-clock time
func (d *Decoder) ExpirationDate(token string) (time.Time, error) {
	return d.claimDate(token, ClaimExpiresAt, ErrNoExpiry)
}

// IssuedDate returns the token's iat claim as a wall-clock time
func (d *Decoder) IssuedDate(token string) (time.Time, error) {
	return d.claimDate(token, ClaimIssuedAt, ErrNoIssuedAt)
}

// NotBeforeDate returns the token's nbf claim as a wall-clock time
func (d *Decoder) NotBeforeDate(token string) (time.Time, error) {
	return d.claimDate(token, ClaimNotBefore, ErrNoNotBefore)
}

func (d *Decoder) claimDate(token, name string, missing error) (time.Time, error) {
	claims, err := d.DecodePayload(token)
	if err != nil {
		return time.Time{}, err
	}

	t, ok := claims.dateClaim(name)
	if !ok {
		return time.Time{}, missing
	}
	return t, nil
}

// IsNotYetValid reports whether the token's nbf claim lies in the future.
// Unlike IsExpired it fails open: a token without a usable nbf claim is
// valid immediately.
func (d *Decoder) IsNotYetValid(token string) bool {
	claims, err := d.DecodePayload(token)
	if err != nil {
		return false
	}

	nbf, ok := claims.dateSeconds(ClaimNotBefore)
	if !ok {
		return false
	}

	now := unixSeconds(d.clock())
	return now+d.leeway.Seconds() < nbf
}

func (d *Decoder) checkSize(token string) error {
	if len(token) == 0 {
		return ErrEmptyToken
	}
	if len(token) > d.maxTokenLength {
		return ErrTokenTooLarge
	}
	return nil
}

// debugLog reports a swallowed decode failure to the diagnostic sink.
// It is a no-op unless Debug was set; it never changes what the API
// returns.
func (d *Decoder) debugLog(msg string, err error) {
	if !d.debug {
		return
	}
	logger := d.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug(msg, slog.String("error", err.Error()))
}
