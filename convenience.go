package jwtdecode

import (
	"context"
	"time"
)

// defaultDecoder backs the package-level convenience functions. The
// default configuration cannot fail validation.
var defaultDecoder = func() *Decoder {
	d, err := New()
	if err != nil {
		panic("jwtdecode: default configuration is invalid: " + err.Error())
	}
	return d
}()

// DecodePayload decodes the payload segment of a compact token using the
// default decoder. For an injectable clock, leeway, or diagnostic logging,
// use the Decoder API.
func DecodePayload(token string) (Claims, error) {
	return defaultDecoder.DecodePayload(token)
}

// Decode decodes the header and payload segments of a compact token using
// the default decoder, carrying the signature segment through unmodified.
func Decode(token string) (*DecodedToken, error) {
	return defaultDecoder.Decode(token)
}

// IsValidFormat reports whether the token is structurally a compact JWT
func IsValidFormat(token string) bool {
	return validFormat(token)
}

// IsExpired reports whether the token's exp claim lies before now+offset,
// using the default decoder. Undecodable tokens report true.
func IsExpired(token string, offset time.Duration) bool {
	return defaultDecoder.IsExpired(token, offset)
}

// RemainingTime returns the time until the token's exp claim using the
// default decoder, clamped to zero for an already-expired token.
func RemainingTime(token string) (time.Duration, error) {
	return defaultDecoder.RemainingTime(token)
}

// ExpirationDate returns the token's exp claim as a wall-clock time using
// the default decoder.
func ExpirationDate(token string) (time.Time, error) {
	return defaultDecoder.ExpirationDate(token)
}

// IssuedDate returns the token's iat claim as a wall-clock time using the
// default decoder.
func IssuedDate(token string) (time.Time, error) {
	return defaultDecoder.IssuedDate(token)
}

// WatchExpiry watches the token's remaining lifetime using the default
// decoder. See Decoder.WatchExpiry.
func WatchExpiry(ctx context.Context, token string, interval time.Duration) <-chan int64 {
	return defaultDecoder.WatchExpiry(ctx, token, interval)
}
