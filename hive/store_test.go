package hive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRejectsTooSmallSize(t *testing.T) {
	_, err := Create(10)
	assert.Error(t, err)
}

func TestCreateProducesCleanStore(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	assert.Equal(t, 65536, s.Size())
	assert.True(t, s.Dirty())
	assert.Equal(t, IntegrityOK, IntegrityCheck(s.Bytes()))
}

func TestFlushClearsDirtyFlag(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	require.True(t, s.Dirty())
	s.Flush()
	assert.False(t, s.Dirty())
}

func TestOpenRoundTripsThroughFlush(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	data := s.Flush()

	reopened, err := Open(data)
	require.NoError(t, err)
	assert.Equal(t, s.Size(), reopened.Size())
	assert.Equal(t, IntegrityOK, reopened.IntegrityCheck())
}

func TestOpenRejectsTruncatedImage(t *testing.T) {
	_, err := Open(make([]byte, 10))
	assert.Error(t, err)
}

func TestOpenRejectsBadHeader(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	data := s.Flush()
	data[0] ^= 0xFF

	_, err = Open(data)
	assert.Error(t, err)
}

func TestSetRootThenRoot(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	s.SetRoot(CellRef(4224))
	assert.Equal(t, CellRef(4224), s.Root())
}
