package hive

import (
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityCheckOKOnFreshStore(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	data := s.Flush()
	assert.Equal(t, IntegrityOK, IntegrityCheck(data))
}

func TestIntegrityCheckDetectsTruncation(t *testing.T) {
	assert.Equal(t, IntegrityCorrupt, IntegrityCheck(make([]byte, 10)))
}

func TestIntegrityCheckDetectsBadMagic(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	data := s.Flush()
	data[0] ^= 0xFF
	assert.Equal(t, IntegrityInvalidSignature, IntegrityCheck(data))
}

func TestIntegrityCheckDetectsChecksumMismatch(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	data := s.Flush()
	// Corrupt a header field without recomputing the checksum.
	data[8] ^= 0xFF
	assert.Equal(t, IntegrityChecksumMismatch, IntegrityCheck(data))
}

func TestIntegrityCheckDetectsSizeMismatchFromOvershootingCell(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	ref, _, err := s.Allocate(64)
	require.NoError(t, err)
	data := s.Flush()

	// Grow the cell's recorded size so the walk overshoots the image.
	h, err := format.ReadCellHeader(data[int(ref):])
	require.NoError(t, err)
	h.Size = uint32(len(data))
	format.PutCellHeader(data[int(ref):], h)

	assert.Equal(t, IntegritySizeMismatch, IntegrityCheck(data))
}

func TestIntegrityCheckViaStore(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	assert.Equal(t, IntegrityOK, s.IntegrityCheck())
}

func TestIntegrityStatusString(t *testing.T) {
	assert.Equal(t, "ok", IntegrityOK.String())
	assert.Equal(t, "corrupt", IntegrityCorrupt.String())
	assert.Equal(t, "checksum-mismatch", IntegrityChecksumMismatch.String())
}
