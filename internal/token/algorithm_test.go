package token

import (
	"errors"
	"testing"
)

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms() {
		got, err := ParseAlgorithm(string(a))
		if err != nil {
			t.Fatalf("ParseAlgorithm(%s) error: %v", a, err)
		}
		if got != a {
			t.Fatalf("ParseAlgorithm(%s) = %s", a, got)
		}
	}

	for _, s := range []string{"", "none", "hs256", "ES512", "RS1"} {
		if _, err := ParseAlgorithm(s); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Fatalf("ParseAlgorithm(%q): expected ErrUnknownAlgorithm, got %v", s, err)
		}
	}
}

func TestAlgorithm_Family(t *testing.T) {
	cases := map[Algorithm]Family{
		HS256: FamilyHMAC, HS384: FamilyHMAC, HS512: FamilyHMAC,
		RS256: FamilyRSA, RS384: FamilyRSA, RS512: FamilyRSA,
		PS256: FamilyRSAPSS, PS384: FamilyRSAPSS, PS512: FamilyRSAPSS,
		ES256: FamilyECDSA, ES384: FamilyECDSA,
		EdDSA:            FamilyEdDSA,
		Algorithm("XX"): FamilyUnknown,
	}
	for alg, want := range cases {
		if got := alg.Family(); got != want {
			t.Fatalf("%s: expected %v, got %v", alg, want, got)
		}
	}
	if HS256.Asymmetric() {
		t.Fatalf("HS256 should be symmetric")
	}
	if !PS512.Asymmetric() {
		t.Fatalf("PS512 should be asymmetric")
	}
}
