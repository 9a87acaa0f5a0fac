package token

import "fmt"

// Algorithm is a JWS "alg" value this tool knows how to check.
type Algorithm string

const (
	HS256 Algorithm = "HS256"
	HS384 Algorithm = "HS384"
	HS512 Algorithm = "HS512"
	RS256 Algorithm = "RS256"
	RS384 Algorithm = "RS384"
	RS512 Algorithm = "RS512"
	PS256 Algorithm = "PS256"
	PS384 Algorithm = "PS384"
	PS512 Algorithm = "PS512"
	ES256 Algorithm = "ES256"
	ES384 Algorithm = "ES384"
	EdDSA Algorithm = "EdDSA"
)

// Family groups algorithms that share a key shape.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyHMAC
	FamilyRSA
	FamilyRSAPSS
	FamilyECDSA
	FamilyEdDSA
)

func (f Family) String() string {
	switch f {
	case FamilyHMAC:
		return "HMAC"
	case FamilyRSA:
		return "RSA"
	case FamilyRSAPSS:
		return "RSA-PSS"
	case FamilyECDSA:
		return "ECDSA"
	case FamilyEdDSA:
		return "EdDSA"
	default:
		return "unknown"
	}
}

// Algorithms lists every recognised algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		HS256, HS384, HS512,
		RS256, RS384, RS512,
		PS256, PS384, PS512,
		ES256, ES384,
		EdDSA,
	}
}

// ParseAlgorithm maps a header "alg" value onto the closed enumeration.
// Matching is exact: "hs256" and "none" are unknown.
func ParseAlgorithm(s string) (Algorithm, error) {
	for _, a := range Algorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

func (a Algorithm) String() string {
	return string(a)
}

// Family reports the key family of a.
func (a Algorithm) Family() Family {
	switch a {
	case HS256, HS384, HS512:
		return FamilyHMAC
	case RS256, RS384, RS512:
		return FamilyRSA
	case PS256, PS384, PS512:
		return FamilyRSAPSS
	case ES256, ES384:
		return FamilyECDSA
	case EdDSA:
		return FamilyEdDSA
	default:
		return FamilyUnknown
	}
}

// Asymmetric reports whether a is verified with a public key.
func (a Algorithm) Asymmetric() bool {
	switch a.Family() {
	case FamilyRSA, FamilyRSAPSS, FamilyECDSA, FamilyEdDSA:
		return true
	default:
		return false
	}
}

// KeyHint is a short prompt describing what the decoding key should look like.
func (a Algorithm) KeyHint() string {
	switch a.Family() {
	case FamilyHMAC:
		return "shared secret"
	case FamilyRSA, FamilyRSAPSS:
		return "RSA public key (PEM or JWK)"
	case FamilyECDSA:
		return "EC public key (PEM or JWK)"
	default:
		return "key"
	}
}
