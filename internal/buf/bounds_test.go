package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflowSafe(t *testing.T) {
	sum, ok := AddOverflowSafe(3, 4)
	assert.True(t, ok)
	assert.Equal(t, 7, sum)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	assert.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	assert.False(t, ok)
}

func TestSliceWithinBounds(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	got, ok := Slice(b, 1, 3)
	assert.True(t, ok)
	assert.Equal(t, []byte{2, 3, 4}, got)
}

func TestSliceOutOfBounds(t *testing.T) {
	b := []byte{1, 2, 3}
	_, ok := Slice(b, 2, 5)
	assert.False(t, ok)

	_, ok = Slice(b, -1, 1)
	assert.False(t, ok)

	_, ok = Slice(b, 4, 0)
	assert.False(t, ok)
}

func TestHas(t *testing.T) {
	b := make([]byte, 10)
	assert.True(t, Has(b, 0, 10))
	assert.True(t, Has(b, 5, 5))
	assert.False(t, Has(b, 5, 6))
}
