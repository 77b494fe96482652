package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeUTF16LERoundTrip(t *testing.T) {
	for _, s := range []string{"", "Services", "éè", "emoji\U0001F600"} {
		encoded := EncodeUTF16LE(s)
		decoded, err := DecodeUTF16LE(encoded)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}
}

func TestDecodeUTF16LERejectsOddLength(t *testing.T) {
	_, err := DecodeUTF16LE([]byte{0x41})
	assert.Error(t, err)
}

func TestDecodeFallsBackToLegacyOnOddLength(t *testing.T) {
	s, err := Decode([]byte{0x41, 0x42, 0x43})
	require.NoError(t, err)
	assert.Equal(t, "ABC", s)
}

func TestDecodePrefersUTF16LEWhenValid(t *testing.T) {
	encoded := EncodeUTF16LE("Root")
	s, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Root", s)
}

func TestDecodeLegacyWindows1252(t *testing.T) {
	s, err := DecodeLegacy([]byte{0x41, 0xe9})
	require.NoError(t, err)
	assert.Equal(t, "Aé", s)
}
