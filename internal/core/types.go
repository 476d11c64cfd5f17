package core

// Token represents the unverified decomposition of a compact JWT.
// The signature segment is carried through as base64url text and is never
// decoded; without verification it is opaque bytes to this library.
type Token struct {
	Header    map[string]any `json:"header"`
	Claims    any            `json:"claims"`
	Signature string         `json:"-"`
	Raw       string
}

const (
	// DefaultMaxTokenLength caps the accepted compact token size
	DefaultMaxTokenLength = 8192

	// DefaultMaxSegmentLength caps a single base64url segment before decoding
	DefaultMaxSegmentLength = 4096
)
