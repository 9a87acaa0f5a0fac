package token

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func b64(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

func TestDecodeSegment_PrettyPrints(t *testing.T) {
	got, err := DecodeSegment(b64(`{"typ":"JWT","alg":"HS256"}`))
	if err != nil {
		t.Fatalf("DecodeSegment error: %v", err)
	}
	want := "{\n  \"alg\": \"HS256\",\n  \"typ\": \"JWT\"\n}"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestDecodeSegment_Errors(t *testing.T) {
	cases := []struct {
		name    string
		segment string
		want    error
	}{
		{"padding rejected", b64(`{"a":1}`) + "=", ErrInvalidBase64},
		{"std alphabet rejected", "a+b/", ErrInvalidBase64},
		{"not utf8", base64.RawURLEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}), ErrInvalidUTF8},
		{"not json", b64(`not json`), ErrInvalidJSON},
		{"trailing value", b64(`{"a":1} {"b":2}`), ErrInvalidJSON},
		{"empty", "", ErrInvalidJSON},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeSegment(tc.segment)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDecodeSegment_NonObjectValues(t *testing.T) {
	got, err := DecodeSegment(b64(`[1,"two",null]`))
	if err != nil {
		t.Fatalf("DecodeSegment error: %v", err)
	}
	if !strings.HasPrefix(got, "[\n  1,") {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestPrettyJSON_Idempotent(t *testing.T) {
	inputs := []string{
		`{"sub":"1234567890","name":"John Doe","iat":1516239022}`,
		`{"nested":{"z":[1,2,{"y":true}],"a":1.50},"html":"<b>&</b>"}`,
		`{"big":12345678901234567890123,"exp":1.0e3}`,
		`"just a string"`,
	}
	for _, in := range inputs {
		once, err := PrettyJSON(in)
		if err != nil {
			t.Fatalf("PrettyJSON(%q) error: %v", in, err)
		}
		twice, err := PrettyJSON(once)
		if err != nil {
			t.Fatalf("PrettyJSON second pass error: %v", err)
		}
		if once != twice {
			t.Fatalf("not idempotent:\n%s\n---\n%s", once, twice)
		}
	}
}

func TestPrettyJSON_KeepsNumbersAndHTML(t *testing.T) {
	got, err := PrettyJSON(`{"n":1.50,"big":12345678901234567890123,"h":"<b>&</b>"}`)
	if err != nil {
		t.Fatalf("PrettyJSON error: %v", err)
	}
	for _, want := range []string{`"n": 1.50`, `"big": 12345678901234567890123`, `"h": "<b>&</b>"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}
