package token

import "errors"

// Construction errors. Decompose wraps these with context; match them with
// errors.Is.
var (
	ErrMalformedToken       = errors.New("malformed token: expected header.claims.signature")
	ErrUnknownAlgorithm     = errors.New("unknown algorithm")
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// Segment decoding errors returned by DecodeSegment.
var (
	ErrInvalidBase64 = errors.New("invalid base64url")
	ErrInvalidUTF8   = errors.New("invalid utf-8")
	ErrInvalidJSON   = errors.New("invalid json")
)
