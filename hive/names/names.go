// Package names decodes and encodes the UTF-16LE key/value name bytes
// stored in nk/vk cells (spec §3, §6), with a Windows-1252 fallback for
// name bytes that don't round-trip as UTF-16LE.
//
// Grounded on the teacher's hive/subkeys/reader.go: UTF-16LE is decoded by
// hand (a code-unit loop via utf16.Decode), exactly like
// decodeUTF16LEName; the legacy codepage fallback uses the same
// golang.org/x/text/encoding/charmap pairing as the teacher's
// decodeCompressedName.
package names

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

const bytesPerUnit = 2

// DecodeUTF16LE decodes a UTF-16LE byte string (as stored in nk/vk name
// fields) into a Go string.
func DecodeUTF16LE(data []byte) (string, error) {
	if len(data)%bytesPerUnit != 0 {
		return "", fmt.Errorf("names: odd UTF-16LE length %d", len(data))
	}
	units := make([]uint16, len(data)/bytesPerUnit)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[i*bytesPerUnit:])
	}
	return string(utf16.Decode(units)), nil
}

// EncodeUTF16LE encodes s as UTF-16LE bytes, without a null terminator (the
// cell's own name-length field carries the length).
func EncodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, len(units)*bytesPerUnit)
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[i*bytesPerUnit:], u)
	}
	return out
}

// DecodeLegacy decodes name bytes that failed to parse as UTF-16LE,
// falling back to Windows-1252 the way the real registry's compressed
// ASCII names are interpreted.
func DecodeLegacy(data []byte) (string, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("names: windows-1252 decode: %w", err)
	}
	return string(decoded), nil
}

// Decode tries UTF-16LE first and falls back to Windows-1252 on failure,
// matching the teacher's two-tier name decode strategy.
func Decode(data []byte) (string, error) {
	if s, err := DecodeUTF16LE(data); err == nil {
		return s, nil
	}
	return DecodeLegacy(data)
}
