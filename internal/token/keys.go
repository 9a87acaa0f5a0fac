package token

import (
	"bytes"
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// KeyKind says which form a DecodingKey ended up in.
type KeyKind int

const (
	KeySecret KeyKind = iota
	KeyRSAPublic
	KeyECPublic
)

func (k KeyKind) String() string {
	switch k {
	case KeySecret:
		return "secret"
	case KeyRSAPublic:
		return "rsa-public"
	case KeyECPublic:
		return "ec-public"
	default:
		return "?"
	}
}

// DecodingKey is key material ready to hand to the verifier.
type DecodingKey struct {
	Kind   KeyKind
	Secret []byte
	Public crypto.PublicKey
}

// Material returns the value the jwt library expects for this key.
func (k DecodingKey) Material() any {
	if k.Kind == KeySecret {
		return k.Secret
	}
	return k.Public
}

// keyParser is one structured interpretation of the key text.
type keyParser func(raw []byte) (crypto.PublicKey, bool)

// ResolveKey turns the text typed into the key pane into a decoding key for
// alg. Structured parses are tried in order; if none succeeds the bytes are
// used as an HMAC secret. It never fails: a half-typed PEM simply becomes a
// secret that will not verify an asymmetric token.
func ResolveKey(alg Algorithm, raw []byte) DecodingKey {
	secret := DecodingKey{Kind: KeySecret, Secret: bytes.Clone(raw)}
	if secret.Secret == nil {
		secret.Secret = []byte{}
	}

	var (
		kind    KeyKind
		parsers []keyParser
	)
	switch alg.Family() {
	case FamilyRSA, FamilyRSAPSS:
		kind = KeyRSAPublic
		parsers = []keyParser{rsaFromPEM, rsaFromJWK}
	case FamilyECDSA:
		kind = KeyECPublic
		parsers = []keyParser{ecFromPEM, ecFromJWK}
	default:
		return secret
	}

	for _, parse := range parsers {
		if pub, ok := parse(raw); ok {
			return DecodingKey{Kind: kind, Public: pub}
		}
	}
	return secret
}

func rsaFromPEM(raw []byte) (crypto.PublicKey, bool) {
	pub, err := jwt.ParseRSAPublicKeyFromPEM(raw)
	if err != nil {
		return nil, false
	}
	return pub, true
}

func ecFromPEM(raw []byte) (crypto.PublicKey, bool) {
	pub, err := jwt.ParseECPublicKeyFromPEM(raw)
	if err != nil {
		return nil, false
	}
	return pub, true
}

func rsaFromJWK(raw []byte) (crypto.PublicKey, bool) {
	pub, ok := publicFromJWK(raw)
	if !ok {
		return nil, false
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	return rsaPub, ok
}

func ecFromJWK(raw []byte) (crypto.PublicKey, bool) {
	pub, ok := publicFromJWK(raw)
	if !ok {
		return nil, false
	}
	ecPub, ok := pub.(*ecdsa.PublicKey)
	return ecPub, ok
}

// publicFromJWK accepts a single JWK (public or private) and returns the raw
// public key.
func publicFromJWK(raw []byte) (crypto.PublicKey, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	key, err := jwk.ParseKey(trimmed)
	if err != nil {
		return nil, false
	}
	pubKey, err := jwk.PublicKeyOf(key)
	if err != nil {
		return nil, false
	}
	var pub any
	if err := pubKey.Raw(&pub); err != nil {
		return nil, false
	}
	return pub, true
}
