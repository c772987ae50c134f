package encoding

import (
	"testing"

	"github.com/lighthouse-iam/uar-engine/testsupport"
	"github.com/stretchr/testify/assert"
)

func TestDetectAndDecode_PlainUTF8(t *testing.T) {
	raw := testsupport.CSV([]string{"email", "name"}, [][]string{{"a@x.com", "Alice"}})

	out, tag := DetectAndDecode(raw)

	assert.Equal(t, UTF8, tag)
	assert.Equal(t, raw, out)
}

func TestDetectAndDecode_UTF8BOM(t *testing.T) {
	raw := testsupport.CSV([]string{"email"}, [][]string{{"a@x.com"}})

	out, tag := DetectAndDecode(testsupport.WithUTF8BOM(raw))

	assert.Equal(t, UTF8BOM, tag)
	assert.Equal(t, raw, out)
}

func TestDetectAndDecode_UTF16LE(t *testing.T) {
	raw := testsupport.CSV([]string{"email", "name"}, [][]string{{"josé@x.com", "José"}})

	out, tag := DetectAndDecode(testsupport.WithUTF16LE(raw))

	assert.Equal(t, UTF16LE, tag)
	assert.Equal(t, string(raw), string(out))
}

func TestDetectAndDecode_UTF16BE(t *testing.T) {
	raw := testsupport.CSV([]string{"email"}, [][]string{{"béla@x.com"}})

	out, tag := DetectAndDecode(testsupport.WithUTF16BE(raw))

	assert.Equal(t, UTF16BE, tag)
	assert.Equal(t, string(raw), string(out))
}

func TestDetectAndDecode_Latin1Fallback(t *testing.T) {
	// Single high byte 0xE9 is "é" in Latin-1 but not valid standalone UTF-8.
	raw := []byte{'n', 'a', 'm', 'e', 0xE9}

	out, tag := DetectAndDecode(raw)

	assert.Equal(t, Latin1, tag)
	assert.Equal(t, "nameé", string(out))
}

func TestDecodeUTF16_LoneSurrogateBecomesReplacementChar(t *testing.T) {
	// A lone high surrogate (0xD800) with no following low surrogate.
	b := []byte{0xD8, 0x00}

	out := decodeUTF16(b, true)

	assert.Equal(t, "�", string(out))
}

func TestDecodeUTF16_OddTrailingByteDiscarded(t *testing.T) {
	b := []byte{0x00, 'A', 0x00} // "A" plus one stray trailing byte

	out := decodeUTF16(b, true)

	assert.Equal(t, "A", string(out))
}
