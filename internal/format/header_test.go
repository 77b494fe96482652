package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitHeaderProducesValidChecksum(t *testing.T) {
	b := make([]byte, HeaderSize)
	h := InitHeader(b, 65536)
	assert.True(t, h.ChecksumOK())
	assert.True(t, VerifyChecksum(b))
	assert.Equal(t, Magic, h.Magic())
	assert.Equal(t, uint32(65536), h.TotalSize())
	assert.True(t, h.IsClean())
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	b := make([]byte, HeaderSize)
	InitHeader(b, 4096)
	b[HdrMagicOffset] ^= 0xFF

	_, err := ParseHeader(b)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestParseHeaderRejectsTruncatedBuffer(t *testing.T) {
	_, err := ParseHeader(make([]byte, HeaderSize-1))
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestRecomputeChecksumTracksMutation(t *testing.T) {
	b := make([]byte, HeaderSize)
	h := InitHeader(b, 4096)
	h.SetRootCell(128)
	assert.False(t, h.ChecksumOK())

	h.RecomputeChecksum()
	assert.True(t, h.ChecksumOK())
}

func TestChecksumIgnoresItsOwnField(t *testing.T) {
	b := make([]byte, HeaderSize)
	h := InitHeader(b, 4096)
	before := h.StoredChecksum()

	PutU32(b, HdrChecksumOffset, 0xDEADBEEF)
	assert.Equal(t, before, ChecksumOf(b))
}

func TestIsCleanDetectsTornSequence(t *testing.T) {
	b := make([]byte, HeaderSize)
	h := InitHeader(b, 4096)
	h.SetPrimarySeq(2)
	h.SetSecondarySeq(1)
	assert.False(t, h.IsClean())
}

func TestHasSignature(t *testing.T) {
	b := make([]byte, HeaderSize)
	InitHeader(b, 4096)
	require.True(t, HasSignature(b))

	b[HdrMagicOffset] = 0
	assert.False(t, HasSignature(b))
}
