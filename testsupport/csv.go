// Package testsupport builds raw CSV byte fixtures for tests across the
// encoding, csvscan, and façade packages, playing the role the
// teacher's sqltest package plays for its own test suite: a single shared
// place to construct realistic inputs instead of every test hand-rolling
// byte slices.
package testsupport

import (
	"strings"
	"unicode/utf16"
)

// CSV joins headers and rows into UTF-8 CSV bytes, CRLF-terminated like a
// typical HR/IdP export.
func CSV(headers []string, rows [][]string) []byte {
	var b strings.Builder
	writeRow(&b, headers)
	for _, r := range rows {
		writeRow(&b, r)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		if strings.ContainsAny(f, ",\"\n") {
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(f, `"`, `""`))
			b.WriteByte('"')
		} else {
			b.WriteString(f)
		}
	}
	b.WriteString("\r\n")
}

// WithUTF8BOM prefixes a UTF-8 byte-order mark onto raw bytes.
func WithUTF8BOM(raw []byte) []byte {
	return append([]byte{0xEF, 0xBB, 0xBF}, raw...)
}

// WithUTF16LE re-encodes UTF-8 bytes as little-endian UTF-16 with a BOM.
func WithUTF16LE(raw []byte) []byte {
	return encodeUTF16(raw, false)
}

// WithUTF16BE re-encodes UTF-8 bytes as big-endian UTF-16 with a BOM.
func WithUTF16BE(raw []byte) []byte {
	return encodeUTF16(raw, true)
}

func encodeUTF16(raw []byte, bigEndian bool) []byte {
	units := utf16.Encode([]rune(string(raw)))
	out := make([]byte, 0, 2+2*len(units)+2)
	if bigEndian {
		out = append(out, 0xFE, 0xFF)
	} else {
		out = append(out, 0xFF, 0xFE)
	}
	for _, u := range units {
		if bigEndian {
			out = append(out, byte(u>>8), byte(u))
		} else {
			out = append(out, byte(u), byte(u>>8))
		}
	}
	return out
}

// WithLatin1 re-encodes UTF-8 bytes containing only Latin-1-representable
// code points into single-byte Latin-1, for encoding-detection tests.
func WithLatin1(raw []byte) []byte {
	runes := []rune(string(raw))
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		out = append(out, byte(r))
	}
	return out
}
