package format

import "encoding/binary"

// Binary encoding utilities for little-endian integers. Mirrors the
// teacher's internal/format/encoding.go: the standard library's
// encoding/binary implementation is already well optimized by the compiler,
// so there is no benefit to hand-rolled unsafe-pointer decoding here.

// PutU16 writes a uint16 to b at off in little-endian order.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 to b at off in little-endian order.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// PutI32 writes an int32 to b at off in little-endian order.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// PutU64 writes a uint64 to b at off in little-endian order.
func PutU64(b []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(b[off:off+8], v)
}

// ReadU16 reads a uint16 from b at off in little-endian order.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// ReadU32 reads a uint32 from b at off in little-endian order.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// ReadI32 reads an int32 from b at off in little-endian order.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}

// ReadU64 reads a uint64 from b at off in little-endian order.
func ReadU64(b []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(b[off : off+8])
}

// CheckedReadU32 reads a uint32 at off, returning ErrTruncated if b is too
// short.
func CheckedReadU32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, ErrTruncated
	}
	return ReadU32(b, off), nil
}

// CheckedReadU16 reads a uint16 at off, returning ErrTruncated if b is too
// short.
func CheckedReadU16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, ErrTruncated
	}
	return ReadU16(b, off), nil
}

// CheckedReadU64 reads a uint64 at off, returning ErrTruncated if b is too
// short.
func CheckedReadU64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, ErrTruncated
	}
	return ReadU64(b, off), nil
}
