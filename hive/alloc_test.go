package hive

import (
	"testing"

	"github.com/arizkami/aurora-kernel-sub000/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorRoundTripMatchesLiteralOffsets(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	a, _, err := s.Allocate(40)
	require.NoError(t, err)
	b, _, err := s.Allocate(80)
	require.NoError(t, err)
	c, _, err := s.Allocate(40)
	require.NoError(t, err)

	assert.Equal(t, CellRef(4096), a)
	assert.Equal(t, CellRef(4096+48), b)
	assert.Equal(t, CellRef(4096+48+88), c)

	require.NoError(t, s.Free(b))

	reused, _, err := s.Allocate(72)
	require.NoError(t, err)
	assert.Equal(t, b, reused, "first-fit must reuse the freed cell")

	var allocated []CellRef
	err = s.Walk(func(ci CellInfo) bool {
		if ci.State == format.CellAllocated {
			allocated = append(allocated, ci.Ref)
		}
		return true
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []CellRef{a, b, c}, allocated)

	assert.Equal(t, 65536-4096, sumSizes(s, t))
}

// sumSizes adds every cell's |size| field across the whole walk, used to
// check the walk accounts for every byte of the data region (spec
// invariant 1).
func sumSizes(s *Store, t *testing.T) int {
	t.Helper()
	total := 0
	err := s.Walk(func(ci CellInfo) bool {
		total += int(ci.Size)
		return true
	})
	require.NoError(t, err)
	return total
}

func TestAllocateThenWriteThenGetRoundTrip(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, payload, err := s.Allocate(64)
	require.NoError(t, err)
	require.NotZero(t, ref)
	assert.GreaterOrEqual(t, len(payload), 64)

	require.NoError(t, s.Write(ref, []byte("hello")))

	out := make([]byte, 5)
	require.NoError(t, s.Read(ref, out))
	assert.Equal(t, "hello", string(out))
}

func TestAllocateSplitsFreeCellLeavingRemainder(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(64)
	require.NoError(t, err)

	st, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 1, st.AllocatedCells)
	assert.Equal(t, 1, st.FreeCells)
	assert.NotZero(t, ref)
}

func TestAllocateReturnsZeroOnExhaustion(t *testing.T) {
	s, err := Create(format.HeaderSize + format.CellHeaderSize + 64)
	require.NoError(t, err)

	ref, payload, err := s.Allocate(1 << 20)
	require.NoError(t, err)
	assert.Zero(t, ref)
	assert.Nil(t, payload)
}

func TestAllocateRejectsNegativeSize(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	_, _, err = s.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidRef)
}

func TestFreeThenReallocateReusesSpace(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(128)
	require.NoError(t, err)
	require.NoError(t, s.Free(ref))

	st, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 0, st.AllocatedCells)
	assert.Equal(t, 1, st.FreeCells)
}

func TestFreeOfAlreadyFreeCellFails(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, _, err := s.Allocate(128)
	require.NoError(t, err)
	require.NoError(t, s.Free(ref))

	err = s.Free(ref)
	assert.ErrorIs(t, err, ErrFreeCell)
}

func TestFreeCoalescesForwardAndBackward(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	a, _, err := s.Allocate(64)
	require.NoError(t, err)
	b, _, err := s.Allocate(64)
	require.NoError(t, err)
	c, _, err := s.Allocate(64)
	require.NoError(t, err)

	require.NoError(t, s.Free(a))
	require.NoError(t, s.Free(c))
	require.NoError(t, s.Free(b))

	st, err := s.Statistics()
	require.NoError(t, err)
	assert.Equal(t, 0, st.AllocatedCells)
	assert.Equal(t, 1, st.FreeCells, "adjacent frees should coalesce into a single free cell")
}

func TestFreeOfInvalidRefFails(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	err = s.Free(CellRef(7))
	assert.ErrorIs(t, err, ErrInvalidRef)
}

func TestResizeGrowingPreservesPayload(t *testing.T) {
	s, err := Create(65536)
	require.NoError(t, err)

	ref, payload, err := s.Allocate(16)
	require.NoError(t, err)
	copy(payload, []byte("0123456789abcdef"))

	newRef, newPayload, err := s.Resize(ref, 256)
	require.NoError(t, err)
	assert.NotZero(t, newRef)
	assert.Equal(t, "0123456789abcdef", string(newPayload[:16]))
}
