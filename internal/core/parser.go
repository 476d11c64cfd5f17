package core

import (
	"fmt"
)

// ErrInvalidFormat reports input that does not split into three
// dot-separated segments.
var ErrInvalidFormat = fmt.Errorf("invalid token format")

// SegmentError reports a decode failure in a named token segment.
type SegmentError struct {
	Segment string // "header" or "payload"
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("failed to decode %s segment: %v", e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Split3 splits a compact token into its three dot-separated segments.
// When the input carries more than three parts the trailing dots stay in
// the third segment, which then fails base64url validation downstream.
func Split3(s string) (string, string, string, bool) {
	sLen := len(s)
	first := -1
	second := -1

	for i := 0; i < sLen; i++ {
		if s[i] == '.' {
			if first == -1 {
				first = i
			} else {
				second = i
				break
			}
		}
	}

	if first == -1 || second == -1 {
		return "", "", "", false
	}

	return s[:first], s[first+1 : second], s[second+1:], true
}

// DecodePayloadSegment decodes only the payload segment of a compact
// token into claims. The header segment is left untouched.
func DecodePayloadSegment(tokenString string, maxSegmentLength int, claims any) error {
	_, part2, _, ok := Split3(tokenString)
	if !ok {
		return ErrInvalidFormat
	}

	if err := DecodeSegment(part2, maxSegmentLength, claims); err != nil {
		return &SegmentError{Segment: "payload", Err: err}
	}

	return nil
}

// DecodeUnverified decodes the header and payload segments of a compact
// token without verifying its signature. The signature segment is carried
// through unmodified. Failure in either segment fails the whole call.
func DecodeUnverified(tokenString string, maxSegmentLength int, claims any) (*Token, error) {
	part1, part2, part3, ok := Split3(tokenString)
	if !ok {
		return nil, ErrInvalidFormat
	}

	var header map[string]any
	if err := DecodeSegment(part1, maxSegmentLength, &header); err != nil {
		return nil, &SegmentError{Segment: "header", Err: err}
	}

	if err := DecodeSegment(part2, maxSegmentLength, claims); err != nil {
		return nil, &SegmentError{Segment: "payload", Err: err}
	}

	return &Token{
		Header:    header,
		Claims:    claims,
		Signature: part3,
		Raw:       tokenString,
	}, nil
}
