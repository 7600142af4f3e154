// Package psk converts a pre-shared key between its three forms: raw
// bytes in a document, 3-digit octal escape text on the text-proto
// surface, and standard base64 in YAML output.
package psk

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrEncoding = errors.New("psk encoding mismatch")

// Escape renders every byte as a 3-digit octal escape with no
// separators, e.g. []byte{1, 2} -> `\001\002`.
func Escape(d []byte) string {
	var b strings.Builder
	b.Grow(4 * len(d))
	for _, c := range d {
		fmt.Fprintf(&b, "\\%03o", c)
	}
	return b.String()
}

// Unescape inverts Escape. It accepts only the syntax Escape produces:
// a sequence of backslash-plus-3-octal-digits groups. Any other escape
// form or stray character is an error.
func Unescape(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, fmt.Errorf("%w: escape text length %d is not a multiple of 4", ErrEncoding, len(s))
	}
	res := make([]byte, 0, len(s)/4)
	for i := 0; i < len(s); i += 4 {
		if s[i] != '\\' {
			return nil, fmt.Errorf("%w: expected escape at offset %d, got %q", ErrEncoding, i, s[i])
		}
		var v int
		for j := i + 1; j < i+4; j++ {
			c := s[j]
			if c < '0' || c > '7' {
				return nil, fmt.Errorf("%w: bad octal digit %q at offset %d", ErrEncoding, c, j)
			}
			v = v<<3 | int(c-'0')
		}
		if v > 0xff {
			return nil, fmt.Errorf("%w: escape at offset %d exceeds one byte", ErrEncoding, i)
		}
		res = append(res, byte(v))
	}
	return res, nil
}

// ToBase64 is the document-side rendering of a raw key.
func ToBase64(d []byte) string {
	return base64.StdEncoding.EncodeToString(d)
}

// FromBase64 inverts ToBase64.
func FromBase64(s string) ([]byte, error) {
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return d, nil
}
