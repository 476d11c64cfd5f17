package jwtdecode

import (
	"time"
)

// Reserved claim names as defined in RFC 7519.
const (
	ClaimIssuer    = "iss"
	ClaimSubject   = "sub"
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimNotBefore = "nbf"
	ClaimIssuedAt  = "iat"
	ClaimID        = "jti"
)

// Claims represents a decoded JWT payload as an open-ended mapping from
// claim name to JSON value. Reserved claims are reachable through typed
// accessors; everything else through Get or the generic Claim function.
type Claims map[string]any

// Get returns the raw value of the named claim. Presence is determined by
// key membership, so a claim explicitly set to null reports ok=true with a
// nil value.
func (c Claims) Get(name string) (any, bool) {
	v, ok := c[name]
	return v, ok
}

// Claim returns the named claim converted to T. It reports false when the
// claim is absent or its value is not a T.
func Claim[T any](c Claims, name string) (T, bool) {
	var zero T
	v, ok := c[name]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// Issuer returns the iss claim
func (c Claims) Issuer() (string, bool) {
	return Claim[string](c, ClaimIssuer)
}

// Subject returns the sub claim
func (c Claims) Subject() (string, bool) {
	return Claim[string](c, ClaimSubject)
}

// ID returns the jti claim
func (c Claims) ID() (string, bool) {
	return Claim[string](c, ClaimID)
}

// Audience returns the aud claim normalized to a string slice. RFC 7519
// permits either a single string or an ordered array of strings; both
// shapes are accepted. Array entries that are not strings invalidate the
// whole claim.
func (c Claims) Audience() ([]string, bool) {
	v, ok := c[ClaimAudience]
	if !ok {
		return nil, false
	}

	switch aud := v.(type) {
	case string:
		return []string{aud}, true
	case []string:
		out := make([]string, len(aud))
		copy(out, aud)
		return out, true
	case []any:
		out := make([]string, 0, len(aud))
		for _, item := range aud {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// ExpiresAt returns the exp claim as a wall-clock time. Non-numeric, NaN
// and infinite values report false.
func (c Claims) ExpiresAt() (time.Time, bool) {
	return c.dateClaim(ClaimExpiresAt)
}

// NotBefore returns the nbf claim as a wall-clock time
func (c Claims) NotBefore() (time.Time, bool) {
	return c.dateClaim(ClaimNotBefore)
}

// IssuedAt returns the iat claim as a wall-clock time
func (c Claims) IssuedAt() (time.Time, bool) {
	return c.dateClaim(ClaimIssuedAt)
}

func (c Claims) dateClaim(name string) (time.Time, bool) {
	sec, ok := c.dateSeconds(name)
	if !ok {
		return time.Time{}, false
	}
	return dateFromSeconds(sec)
}

// dateSeconds keeps infinite values, unlike dateClaim. The remaining-time
// path needs exp=+Inf to surface as a huge positive duration rather than
// an absent claim.
func (c Claims) dateSeconds(name string) (float64, bool) {
	v, ok := c[name]
	if !ok {
		return 0, false
	}
	return numericDate(v)
}

// DecodedToken is the result of a full unverified decode: parsed header
// and payload plus the signature segment carried through as base64url
// text. Raw is the original compact token string.
type DecodedToken struct {
	Header    map[string]any `json:"header"`
	Payload   Claims         `json:"payload"`
	Signature string         `json:"-"`
	Raw       string         `json:"-"`
}

// Algorithm returns the alg header claim, or "" if absent
func (t *DecodedToken) Algorithm() string {
	alg, _ := t.Header["alg"].(string)
	return alg
}

// Type returns the typ header claim, or "" if absent
func (t *DecodedToken) Type() string {
	typ, _ := t.Header["typ"].(string)
	return typ
}
