package hive

import (
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapViewExpandsToPageBoundaries(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	v, err := s.MapView(format.HeaderSize+10, 4)
	require.NoError(t, err)
	defer v.Release()

	assert.Zero(t, (v.start)%pageSize)
	assert.Zero(t, (v.end)%pageSize)
	assert.LessOrEqual(t, v.start, format.HeaderSize+10)
	assert.GreaterOrEqual(t, v.end, format.HeaderSize+14)
}

func TestMapViewSharesOverlappingRanges(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	v1, err := s.MapView(format.HeaderSize, 16)
	require.NoError(t, err)
	defer v1.Release()

	v2, err := s.MapView(format.HeaderSize, 16)
	require.NoError(t, err)
	defer v2.Release()

	assert.Equal(t, v1.start, v2.start)
	assert.Equal(t, v1.end, v2.end)
	assert.Equal(t, 1, s.views, "overlapping ranges should share one view slot")
}

func TestMapViewRejectsOutOfBoundsRange(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	_, err = s.MapView(0, 1<<20)
	assert.ErrorIs(t, err, ErrInvalidRef)
}

func TestReleaseFlushesDirtyStoreWhenLastReference(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)
	s.Flush()
	require.False(t, s.Dirty())

	v, err := s.MapView(format.HeaderSize, 16)
	require.NoError(t, err)

	_, _, err = s.Allocate(8)
	require.NoError(t, err)
	require.True(t, s.Dirty())

	v.Release()
	assert.False(t, s.Dirty(), "releasing the last view reference flushes a dirty store")
}

func TestReleaseDecrementsViewCount(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	v, err := s.MapView(format.HeaderSize, 16)
	require.NoError(t, err)
	assert.Equal(t, 1, s.views)

	v.Release()
	assert.Equal(t, 0, s.views)
}
