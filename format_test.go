package jwtdecode

import (
	"strings"
	"testing"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"well-formed", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc-_123", true},
		{"minimal segments", "a.b.c", true},
		{"empty string", "", false},
		{"no dots", "abc", false},
		{"two segments", "aaa.bbb", false},
		{"four segments", "aaa.bbb.ccc.ddd", false},
		{"empty header", ".bbb.ccc", false},
		{"empty payload", "aaa..ccc", false},
		{"empty signature", "aaa.bbb.", false},
		{"invalid character", "part1!.part2.part3", false},
		{"padding in payload", "aaa.bb=.ccc", false},
		{"padding in signature", "aaa.bbb.cc==", false},
		{"plus character", "aa+a.bbb.ccc", false},
		{"slash character", "aaa.bb/b.ccc", false},
		{"space", "aaa.b b.ccc", false},
		{"unicode", "aaa.bbé.ccc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFormat(tt.token); got != tt.want {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestIsValidFormatDoesNotDecode(t *testing.T) {
	// Valid charset but meaningless content passes the structural check
	// and still fails a real decode.
	token := "notjson.alsonotjson.stillnotjson"
	if !IsValidFormat(token) {
		t.Fatal("structural check should pass on valid charset")
	}
	if _, err := DecodePayload(token); err == nil {
		t.Error("decode should fail on non-JSON content")
	}
}

func TestIsValidFormatLongToken(t *testing.T) {
	// The structural check is charset-only; size limits belong to the
	// decode paths.
	long := strings.Repeat("a", 10000)
	if !IsValidFormat(long + "." + long + "." + long) {
		t.Error("structural check should not enforce size limits")
	}
}
