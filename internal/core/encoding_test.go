package core

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeSegment(t *testing.T) {
	tests := []struct {
		name      string
		segment   string
		wantError bool
	}{
		{"valid object", "eyJzdWIiOiIxMjM0NTY3ODkwIn0", false},
		{"empty segment", "", true},
		{"segment too large", strings.Repeat("a", DefaultMaxSegmentLength+1), true},
		{"padding character", "eyJzdWIiOiIxIn0=", true},
		{"standard base64 plus", "ab+cd", true},
		{"standard base64 slash", "ab/cd", true},
		{"whitespace", "eyJz dWIi", true},
		{"invalid base64 length", "A", true},
		{"valid base64 invalid JSON", base64.RawURLEncoding.EncodeToString([]byte("{not json")), true},
		{"valid base64 invalid UTF-8", base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dest map[string]any
			err := DecodeSegment(tt.segment, DefaultMaxSegmentLength, &dest)
			if tt.wantError && err == nil {
				t.Errorf("DecodeSegment(%q) expected error, got nil", tt.segment)
			}
			if !tt.wantError && err != nil {
				t.Errorf("DecodeSegment(%q) unexpected error: %v", tt.segment, err)
			}
		})
	}
}

func TestDecodeSegmentResult(t *testing.T) {
	var dest map[string]any
	if err := DecodeSegment("eyJzdWIiOiIxMjM0NTY3ODkwIn0", 0, &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub, _ := dest["sub"].(string); sub != "1234567890" {
		t.Errorf("sub = %q, want %q", sub, "1234567890")
	}
}

func TestIsBase64URL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"abcABC019-_", true},
		{"", false},
		{"abc=", false},
		{"ab+c", false},
		{"ab/c", false},
		{"ab.c", false},
		{"ab!c", false},
		{"héllo", false},
	}

	for _, tt := range tests {
		if got := IsBase64URL(tt.input); got != tt.want {
			t.Errorf("IsBase64URL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
