package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// Validate reports whether key verifies the signature of the original token.
// Only the signature is checked. Claims may be any JSON value, or not JSON
// at all, and exp/nbf/iat are ignored. Every failure (wrong key, wrong key
// type, bad signature encoding) is just false.
func Validate(t *Token, key DecodingKey) bool {
	if t == nil {
		return false
	}
	// The method comes from the header alg, so a key can only ever be
	// checked against that one algorithm.
	method := jwt.GetSigningMethod(t.Alg.String())
	if method == nil {
		return false
	}
	sig, err := jwt.NewParser().DecodeSegment(t.SignatureSeg)
	if err != nil {
		return false
	}
	return method.Verify(t.HeaderSeg+"."+t.ClaimsSeg, sig, key.Material()) == nil
}

// ValidateKey resolves raw against the token's algorithm and validates it.
func ValidateKey(t *Token, raw []byte) bool {
	if t == nil {
		return false
	}
	return Validate(t, ResolveKey(t.Alg, raw))
}
