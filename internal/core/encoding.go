package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// DecodeSegment decodes a base64url encoded JWT segment into dest.
// The segment must use the unpadded RFC 4648 §5 alphabet; anything else,
// including standard-base64 characters or padding, is rejected before the
// decoder runs.
func DecodeSegment(segment string, maxSegmentLength int, dest any) error {
	if len(segment) == 0 {
		return fmt.Errorf("empty segment")
	}

	if maxSegmentLength <= 0 {
		maxSegmentLength = DefaultMaxSegmentLength
	}
	if len(segment) > maxSegmentLength {
		return fmt.Errorf("segment too large: maximum %d characters allowed", maxSegmentLength)
	}

	if !IsBase64URL(segment) {
		return fmt.Errorf("invalid base64url characters in segment")
	}

	buf := make([]byte, base64.RawURLEncoding.DecodedLen(len(segment)))
	n, err := base64.RawURLEncoding.Decode(buf, []byte(segment))
	if err != nil {
		return fmt.Errorf("failed to decode base64url: %w", err)
	}

	if !utf8.Valid(buf[:n]) {
		return fmt.Errorf("segment is not valid UTF-8")
	}

	if err := json.Unmarshal(buf[:n], dest); err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// IsBase64URL reports whether s consists only of unpadded base64url
// alphabet characters. An empty string is not a valid segment.
func IsBase64URL(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= 'A' && c <= 'Z') ||
			(c >= 'a' && c <= 'z') ||
			(c >= '0' && c <= '9') ||
			c == '-' || c == '_') {
			return false
		}
	}
	return true
}
