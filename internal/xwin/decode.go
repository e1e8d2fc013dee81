package xwin

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Decoder turns raw property bytes into text. It returns false when the bytes
// are not valid in its encoding.
type Decoder func(raw []byte) (string, bool)

// DecodeUTF8 accepts only well-formed UTF-8.
func DecodeUTF8(raw []byte) (string, bool) {
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// DecodeLatin1 maps every byte to the ISO 8859-1 code point of the same
// value. It never fails. COMPOUND_TEXT properties without escape sequences
// are Latin-1 and decode correctly here.
func DecodeLatin1(raw []byte) (string, bool) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// Decoder chains per property. _NET_WM_NAME is UTF-8 by definition; the
// legacy properties are tried as UTF-8 first and fall back to Latin-1.
var (
	netNameDecoders = []Decoder{DecodeUTF8}
	legacyDecoders  = []Decoder{DecodeUTF8, DecodeLatin1}
)

// decodeText strips NUL terminators and returns the result of the first
// decoder that succeeds. An empty result counts as a failure.
func decodeText(raw []byte, decoders []Decoder) (string, bool) {
	raw = bytes.TrimRight(raw, "\x00")
	if len(raw) == 0 {
		return "", false
	}
	for _, decode := range decoders {
		if text, ok := decode(raw); ok && text != "" {
			return text, true
		}
	}
	return "", false
}

// splitClass returns the class component of a WM_CLASS value, which holds
// two NUL-terminated strings: instance then class.
func splitClass(raw []byte) ([]byte, bool) {
	parts := bytes.Split(bytes.TrimRight(raw, "\x00"), []byte{0})
	if len(parts) < 2 {
		return nil, false
	}
	return parts[1], true
}
