package token

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// DecodeSegment decodes a base64url (unpadded) JWT segment and returns its
// JSON content pretty-printed with two-space indentation. The output is for
// display only.
func DecodeSegment(segment string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}
	return PrettyJSON(string(raw))
}

// PrettyJSON re-serializes a JSON document with sorted object keys and
// two-space indentation. Number literals are kept as written. Applying it
// to its own output is a no-op.
func PrettyJSON(text string) (string, error) {
	v, err := parseJSON(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func parseJSON(text string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// A segment holds exactly one value.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrInvalidJSON)
	}
	return v, nil
}

// decodeObject decodes a segment into a JSON object, used for the header.
func decodeObject(segment string) (map[string]any, error) {
	raw, err := base64.RawURLEncoding.DecodeString(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidUTF8
	}
	v, err := parseJSON(string(raw))
	if err != nil {
		return nil, err
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidJSON)
	}
	return obj, nil
}
