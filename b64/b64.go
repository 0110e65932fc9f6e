// Package b64 is the base64 codec for <data> element payloads.
//
// Encoding produces one contiguous token with no line breaks; wrapping a
// long payload over lines is presentation and belongs to the printer.
// Decoding accepts text straight out of an indented XML document, so all
// whitespace is stripped before the base64 alphabet is applied.
package b64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode encodes binary data as a single contiguous base64 token.
func Encode(d []byte) string {
	return base64.StdEncoding.EncodeToString(d)
}

// Decode decodes base64 text that may contain embedded whitespace.
// Malformed base64 after whitespace stripping yields ErrDataEncoding.
func Decode(s string) ([]byte, error) {
	s = StripWhitespace(s)
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataEncoding, err)
	}
	return d, nil
}

// StripWhitespace removes every whitespace character from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return -1
		}
		return r
	}, s)
}
