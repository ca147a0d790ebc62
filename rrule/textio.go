package rrule

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// stripBOM detects and removes a leading UTF-8 or UTF-16 Byte Order Mark
// from an RRULE text blob, converting UTF-16 input to UTF-8 along the way.
// RRULE text is normally a short in-memory string, so this works directly
// on a []byte rather than wrapping an io.Reader.
func stripBOM(data []byte) ([]byte, error) {
	switch {
	case len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFF, 0xFE}):
		return decodeUTF16(data[2:], unicode.LittleEndian)
	case len(data) >= 2 && bytes.Equal(data[:2], []byte{0xFE, 0xFF}):
		return decodeUTF16(data[2:], unicode.BigEndian)
	case len(data) >= 3 && bytes.Equal(data[:3], []byte{0xEF, 0xBB, 0xBF}):
		return data[3:], nil
	default:
		return data, nil
	}
}

func decodeUTF16(data []byte, endian unicode.Endianness) ([]byte, error) {
	decoder := unicode.UTF16(endian, unicode.IgnoreBOM).NewDecoder()
	r := transform.NewReader(bytes.NewReader(data), decoder)
	return io.ReadAll(r)
}
