package testutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lestrrat-go/jwx/v2/jwk"
)

// Secret is the HMAC secret used by HS* fixtures.
const Secret = "correct horse battery staple"

// Signed is a token together with the text a user would type to verify it.
type Signed struct {
	Token string
	// Key is the decoding key: the secret for HS*, a PKIX PEM public key otherwise.
	Key string
	// JWK is the public key as a JWK document (empty for HS*).
	JWK string
}

var (
	rsaOnce sync.Once
	rsaKey  *rsa.PrivateKey
	rsaErr  error
)

// RSAKey returns a process-wide 2048-bit RSA key. Generating one per test is
// slow and the tests never mutate it.
func RSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	rsaOnce.Do(func() {
		rsaKey, rsaErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	if rsaErr != nil {
		t.Fatalf("generate rsa key: %v", rsaErr)
	}
	return rsaKey
}

// ECKey generates a fresh key on curve.
func ECKey(t *testing.T, curve elliptic.Curve) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		t.Fatalf("generate ec key: %v", err)
	}
	return key
}

// Claims returns a small claim set with an already-expired exp, so tests
// also prove that expiry is ignored.
func Claims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "1234567890",
		"name": "John Doe",
		"iat":  1516239022,
		"exp":  1516239023,
	}
}

// SignHMAC returns a token for alg ("HS256", "HS384", "HS512") signed with secret.
func SignHMAC(t *testing.T, alg string, secret string) Signed {
	t.Helper()
	return Signed{
		Token: sign(t, alg, []byte(secret)),
		Key:   secret,
	}
}

// SignRSA returns a token for an RS* or PS* alg signed with RSAKey.
func SignRSA(t *testing.T, alg string) Signed {
	t.Helper()
	key := RSAKey(t)
	return Signed{
		Token: sign(t, alg, key),
		Key:   PublicKeyPEM(t, &key.PublicKey),
		JWK:   PublicKeyJWK(t, &key.PublicKey),
	}
}

// SignEC returns a token for ES256 (P-256) or ES384 (P-384).
func SignEC(t *testing.T, alg string) Signed {
	t.Helper()
	curve := elliptic.P256()
	if alg == "ES384" {
		curve = elliptic.P384()
	}
	key := ECKey(t, curve)
	return Signed{
		Token: sign(t, alg, key),
		Key:   PublicKeyPEM(t, &key.PublicKey),
		JWK:   PublicKeyJWK(t, &key.PublicKey),
	}
}

func sign(t *testing.T, alg string, key any) string {
	t.Helper()
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		t.Fatalf("no signing method for %s", alg)
	}
	s, err := jwt.NewWithClaims(method, Claims()).SignedString(key)
	if err != nil {
		t.Fatalf("sign %s: %v", alg, err)
	}
	return s
}

// PublicKeyPEM encodes pub as a PKIX "PUBLIC KEY" PEM block.
func PublicKeyPEM(t *testing.T, pub any) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// PublicKeyJWK encodes pub as a JWK JSON document.
func PublicKeyJWK(t *testing.T, pub any) string {
	t.Helper()
	key, err := jwk.FromRaw(pub)
	if err != nil {
		t.Fatalf("jwk from raw: %v", err)
	}
	b, err := json.Marshal(key)
	if err != nil {
		t.Fatalf("marshal jwk: %v", err)
	}
	return string(b)
}

// RawToken builds an unsigned token from literal header and claims JSON.
// The signature segment is a fixed placeholder.
func RawToken(header, claims string) string {
	enc := base64.RawURLEncoding
	return enc.EncodeToString([]byte(header)) + "." +
		enc.EncodeToString([]byte(claims)) + "." +
		enc.EncodeToString([]byte("signature"))
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
