package token

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Token is a JWT split into its three segments plus the values derived from
// them at load time. It is never modified after Decompose returns.
type Token struct {
	Raw          string
	HeaderSeg    string
	ClaimsSeg    string
	SignatureSeg string

	// Alg is taken from the header once; editing the displayed header does
	// not change it.
	Alg Algorithm

	HeaderJSON string
	ClaimsJSON string
	// ClaimsErr is set when the claims segment could not be decoded. The
	// token is still usable; ClaimsJSON then carries a one-line message.
	ClaimsErr error
}

// Decompose splits raw into header, claims and signature, decodes the header
// and resolves the signing algorithm.
//
// A bad claims segment is reported through Token.ClaimsErr rather than as an
// error so the header and key panes stay usable.
func Decompose(raw string) (*Token, error) {
	raw = strings.TrimSpace(raw)

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: got %d segments", ErrMalformedToken, len(parts))
	}
	for i, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: segment %d is empty", ErrMalformedToken, i+1)
		}
	}

	t := &Token{
		Raw:          raw,
		HeaderSeg:    parts[0],
		ClaimsSeg:    parts[1],
		SignatureSeg: parts[2],
	}

	header, err := decodeObject(t.HeaderSeg)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	alg, err := algorithmFromHeader(header)
	if err != nil {
		return nil, err
	}
	t.Alg = alg

	t.HeaderJSON, err = DecodeSegment(t.HeaderSeg)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}

	claims, err := DecodeSegment(t.ClaimsSeg)
	if err != nil {
		t.ClaimsErr = fmt.Errorf("decode claims: %w", err)
		claims = "error: " + t.ClaimsErr.Error()
	}
	t.ClaimsJSON = claims

	return t, nil
}

func algorithmFromHeader(header map[string]any) (Algorithm, error) {
	v, ok := header["alg"]
	if !ok {
		return "", fmt.Errorf("%w: header has no \"alg\"", ErrUnknownAlgorithm)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: \"alg\" is not a string", ErrUnknownAlgorithm)
	}
	alg, err := ParseAlgorithm(s)
	if err != nil {
		return "", err
	}
	if alg.Family() == FamilyEdDSA {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return alg, nil
}

// HeaderField returns a top-level string field from the header, e.g. "typ"
// or "kid". Missing or non-string fields yield "".
func (t *Token) HeaderField(name string) string {
	header, err := decodeObject(t.HeaderSeg)
	if err != nil {
		return ""
	}
	s, _ := header[name].(string)
	return s
}

// maxNumericDate is 9999-12-31T23:59:59Z, the last instant RFC3339 can show.
const maxNumericDate = 253402300799

// ClaimTime reads a NumericDate claim such as "exp", "iat" or "nbf".
// Fractional seconds are truncated. Values before the epoch or past year
// 9999 are rejected.
func (t *Token) ClaimTime(name string) (time.Time, bool) {
	if t.ClaimsErr != nil {
		return time.Time{}, false
	}
	claims, err := decodeObject(t.ClaimsSeg)
	if err != nil {
		return time.Time{}, false
	}
	n, ok := claims[name].(json.Number)
	if !ok {
		return time.Time{}, false
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || f < 0 || f > maxNumericDate {
		return time.Time{}, false
	}
	return time.Unix(int64(f), 0).UTC(), true
}
