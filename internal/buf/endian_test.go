package buf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU16LERoundTrip(t *testing.T) {
	b := make([]byte, 2)
	PutU16LE(b, 0xBEEF)
	assert.Equal(t, uint16(0xBEEF), U16LE(b))
}

func TestU32LERoundTrip(t *testing.T) {
	b := make([]byte, 4)
	PutU32LE(b, 0xDEADBEEF)
	assert.Equal(t, uint32(0xDEADBEEF), U32LE(b))
}

func TestU64LERoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutU64LE(b, 0x0102030405060708)
	assert.Equal(t, uint64(0x0102030405060708), U64LE(b))
}

func TestI32LERoundTrip(t *testing.T) {
	b := make([]byte, 4)
	PutI32LE(b, -12345)
	assert.Equal(t, int32(-12345), I32LE(b))
}

func TestLittleEndianByteOrder(t *testing.T) {
	b := make([]byte, 4)
	PutU32LE(b, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
}
