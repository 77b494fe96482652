package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeVKRoundTripInline(t *testing.T) {
	vk := VKRecord{
		Type:      ValTypeDWord,
		DataLen:   4,
		Inline:    true,
		DataOrOff: 0xCAFEBABE,
		NameRaw:   []byte{'N', 0},
	}
	b := make([]byte, vk.EncodedSize())
	EncodeVK(b, vk)

	got, err := DecodeVK(b)
	require.NoError(t, err)
	assert.Equal(t, vk, got)
}

func TestEncodeDecodeVKRoundTripExternal(t *testing.T) {
	vk := VKRecord{
		Type:      ValTypeBinary,
		DataLen:   4096,
		Inline:    false,
		DataOrOff: 8192,
		NameRaw:   []byte{'D', 0, 'a', 0, 't', 0, 'a', 0},
	}
	b := make([]byte, vk.EncodedSize())
	EncodeVK(b, vk)

	got, err := DecodeVK(b)
	require.NoError(t, err)
	assert.Equal(t, vk, got)
}

func TestVKInlineBitDoesNotLeakIntoDataLen(t *testing.T) {
	vk := VKRecord{Type: ValTypeString, DataLen: VKMaxInlineLen, Inline: true, NameRaw: nil}
	b := make([]byte, vk.EncodedSize())
	EncodeVK(b, vk)

	raw := ReadU32(b, VKDataLenOffset)
	assert.NotZero(t, raw&VKInlineBit)
	assert.Equal(t, uint32(VKMaxInlineLen), raw&VKDataLenMask)
}

func TestDecodeVKRejectsTruncatedFixedHeader(t *testing.T) {
	_, err := DecodeVK(make([]byte, VKFixedHeaderSize-1))
	assert.ErrorIs(t, err, ErrTruncated)
}
