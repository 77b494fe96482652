package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWholePayloadWhenSizeZero(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, payload, err := s.Allocate(32)
	require.NoError(t, err)

	got, err := s.Get(ref, 0)
	require.NoError(t, err)
	assert.Equal(t, len(payload), len(got))
}

func TestGetRejectsSizeBeyondCapacity(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(32)
	require.NoError(t, err)

	_, err = s.Get(ref, 1<<20)
	assert.ErrorIs(t, err, ErrTooSmall)
}

func TestGetOnFreeCellFails(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(32)
	require.NoError(t, err)
	require.NoError(t, s.Free(ref))

	_, err = s.Get(ref, 0)
	assert.ErrorIs(t, err, ErrFreeCell)
}

func TestSetSignatureThenSignature(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(32)
	require.NoError(t, err)

	require.NoError(t, s.SetSignature(ref, 0x6b6e, 0))
	sig, err := s.Signature(ref)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x6b6e), sig)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(16)
	require.NoError(t, err)

	require.NoError(t, s.Write(ref, []byte("abcdefgh")))
	out := make([]byte, 8)
	require.NoError(t, s.Read(ref, out))
	assert.Equal(t, "abcdefgh", string(out))
}

func TestCellAtRejectsOutOfRangeOffset(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	_, err = s.Get(CellRef(1<<20), 0)
	assert.ErrorIs(t, err, ErrInvalidRef)
}
