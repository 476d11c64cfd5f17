package jwtdecode

import (
	"github.com/cybergodev/jwtdecode/internal/core"
)

// IsValidFormat reports whether the token is structurally a compact JWT:
// exactly three non-empty dot-separated segments, each consisting only of
// unpadded base64url alphabet characters. Nothing is decoded; a
// well-formed token may still fail to decode, and the signature segment is
// held to the same character class even though it is never decoded.
func (d *Decoder) IsValidFormat(token string) bool {
	return validFormat(token)
}

func validFormat(token string) bool {
	part1, part2, part3, ok := core.Split3(token)
	if !ok {
		return false
	}

	// A fourth segment leaves a dot inside part3, which the alphabet
	// check rejects.
	return core.IsBase64URL(part1) &&
		core.IsBase64URL(part2) &&
		core.IsBase64URL(part3)
}
