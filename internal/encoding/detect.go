// Package encoding sniffs the byte-level encoding of an uploaded CSV export
// and normalizes it to UTF-8. Enterprise exports arrive from SAP, Excel, and
// Okta in UTF-8, UTF-8 with a BOM, UTF-16 (either endianness), or plain
// Latin-1; rejecting any of these is unacceptable, so decoding never fails
// on nonempty input.
package encoding

import (
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Tag identifies the encoding that was detected.
type Tag string

const (
	UTF8     Tag = "utf-8"
	UTF8BOM  Tag = "utf-8-bom"
	UTF16LE  Tag = "utf-16-le"
	UTF16BE  Tag = "utf-16-be"
	Latin1   Tag = "latin-1"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectAndDecode sniffs the byte slice's encoding and returns the
// equivalent UTF-8 bytes along with the detected tag. It never fails on
// nonempty input: unrecognized, non-UTF-8 byte sequences fall back to
// Latin-1, where every byte maps to the identical Unicode code point.
func DetectAndDecode(raw []byte) ([]byte, Tag) {
	if hasPrefix(raw, bomUTF8) {
		return raw[len(bomUTF8):], UTF8BOM
	}
	if hasPrefix(raw, bomUTF16LE) {
		return decodeUTF16(raw[len(bomUTF16LE):], false), UTF16LE
	}
	if hasPrefix(raw, bomUTF16BE) {
		return decodeUTF16(raw[len(bomUTF16BE):], true), UTF16BE
	}
	if utf8.Valid(raw) {
		return raw, UTF8
	}
	return decodeLatin1(raw), Latin1
}

func hasPrefix(b, prefix []byte) bool {
	if len(b) < len(prefix) {
		return false
	}
	for i := range prefix {
		if b[i] != prefix[i] {
			return false
		}
	}
	return true
}

// decodeUTF16 decodes a BOM-stripped UTF-16 byte stream (LE or BE) into
// UTF-8, honoring surrogate pairs. Lone/isolated surrogates become U+FFFD.
// An odd trailing byte is silently discarded, per spec §4.1.
func decodeUTF16(b []byte, bigEndian bool) []byte {
	n := len(b) / 2
	units := make([]uint16, n)
	for i := 0; i < n; i++ {
		hi, lo := b[i*2], b[i*2+1]
		if bigEndian {
			units[i] = uint16(hi)<<8 | uint16(lo)
		} else {
			units[i] = uint16(lo)<<8 | uint16(hi)
		}
	}
	// utf16.Decode already maps unpaired/invalid surrogates to
	// unicode.ReplacementChar, which is exactly the U+FFFD behavior spec'd.
	runes := utf16.Decode(units)
	return []byte(string(runes))
}

// decodeLatin1 expands every byte as its own code point (ISO-8859-1),
// producing valid UTF-8 output. Bytes 0x80-0xFF expand to two-byte UTF-8
// sequences.
func decodeLatin1(b []byte) []byte {
	dec := charmap.ISO8859_1.NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		// charmap.ISO8859_1 is a total mapping over all 256 byte values, so
		// this path is unreachable; keep a safe fallback rather than panic.
		return manualLatin1(b)
	}
	return out
}

func manualLatin1(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		out = utf8.AppendRune(out, rune(c))
	}
	return out
}
