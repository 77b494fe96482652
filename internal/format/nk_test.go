package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNKRoundTrip(t *testing.T) {
	nk := NKRecord{
		ParentOffset:     4096,
		SubkeyListOffset: InvalidOffset,
		ValueListOffset:  8192,
		SecurityOffset:   InvalidOffset,
		SubkeyCount:      3,
		ValueCount:       2,
		NameRaw:          []byte{'R', 0, 'o', 0, 'o', 0, 't', 0},
	}
	b := make([]byte, nk.EncodedSize())
	EncodeNK(b, nk)

	got, err := DecodeNK(b)
	require.NoError(t, err)
	assert.Equal(t, nk.ParentOffset, got.ParentOffset)
	assert.Equal(t, nk.SubkeyListOffset, got.SubkeyListOffset)
	assert.Equal(t, nk.ValueListOffset, got.ValueListOffset)
	assert.Equal(t, nk.SecurityOffset, got.SecurityOffset)
	assert.Equal(t, nk.SubkeyCount, got.SubkeyCount)
	assert.Equal(t, nk.ValueCount, got.ValueCount)
	assert.Equal(t, nk.NameRaw, got.NameRaw)
}

func TestDecodeNKRejectsTruncatedFixedHeader(t *testing.T) {
	_, err := DecodeNK(make([]byte, NKFixedHeaderSize-1))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeNKRejectsTruncatedName(t *testing.T) {
	b := make([]byte, NKFixedHeaderSize)
	PutU16(b, NKNameLenOffset, 10)
	_, err := DecodeNK(b)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestEncodedSizeMatchesFixedHeaderPlusName(t *testing.T) {
	nk := NKRecord{NameRaw: make([]byte, 12)}
	assert.Equal(t, NKFixedHeaderSize+12, nk.EncodedSize())
}
