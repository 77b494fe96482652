package format

import (
	"bytes"
	"fmt"
	"math/bits"
)

// Header is a decoded view of the fixed 4096-byte hive header (spec §3,
// §6). Fields are read directly from the backing bytes; Header itself holds
// no independent copy.
type Header struct {
	raw []byte // len == HeaderSize
}

// ParseHeader validates the magic and wraps b[:HeaderSize] as a Header.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}
	h := Header{raw: b[:HeaderSize]}
	if h.Magic() != Magic {
		return Header{}, fmt.Errorf("header: %w", ErrSignatureMismatch)
	}
	return h, nil
}

// Raw returns the underlying header bytes (zero-copy).
func (h Header) Raw() []byte { return h.raw }

func (h Header) Magic() uint32          { return ReadU32(h.raw, HdrMagicOffset) }
func (h Header) PrimarySeq() uint32     { return ReadU32(h.raw, HdrPrimarySeqOffset) }
func (h Header) SecondarySeq() uint32   { return ReadU32(h.raw, HdrSecondarySeqOffset) }
func (h Header) Timestamp() uint64      { return ReadU64(h.raw, HdrTimestampOffset) }
func (h Header) MajorVersion() uint32   { return ReadU32(h.raw, HdrMajorVerOffset) }
func (h Header) MinorVersion() uint32   { return ReadU32(h.raw, HdrMinorVerOffset) }
func (h Header) Type() uint32           { return ReadU32(h.raw, HdrTypeOffset) }
func (h Header) Flags() uint32          { return ReadU32(h.raw, HdrFlagsOffset) }
func (h Header) RootCell() uint32       { return ReadU32(h.raw, HdrRootCellOffset) }
func (h Header) TotalSize() uint32      { return ReadU32(h.raw, HdrTotalSizeOffset) }
func (h Header) StoredChecksum() uint32 { return ReadU32(h.raw, HdrChecksumOffset) }

// IsClean reports whether the two sequence numbers agree, i.e. the last
// flush completed without being torn (spec §9: torn-write recovery).
func (h Header) IsClean() bool { return h.PrimarySeq() == h.SecondarySeq() }

func (h Header) SetPrimarySeq(v uint32)   { PutU32(h.raw, HdrPrimarySeqOffset, v) }
func (h Header) SetSecondarySeq(v uint32) { PutU32(h.raw, HdrSecondarySeqOffset, v) }
func (h Header) SetTimestamp(v uint64)    { PutU64(h.raw, HdrTimestampOffset, v) }
func (h Header) SetRootCell(v uint32)     { PutU32(h.raw, HdrRootCellOffset, v) }
func (h Header) SetTotalSize(v uint32)    { PutU32(h.raw, HdrTotalSizeOffset, v) }

// InitHeader stamps a fresh header into b[:HeaderSize]: magic, versions,
// zeroed sequence numbers, totalSize, and a checksum. The caller sets
// RootCell afterward and calls RecomputeChecksum.
func InitHeader(b []byte, totalSize uint32) Header {
	h := Header{raw: b[:HeaderSize]}
	for i := range h.raw {
		h.raw[i] = 0
	}
	PutU32(h.raw, HdrMagicOffset, Magic)
	PutU32(h.raw, HdrMajorVerOffset, 1)
	PutU32(h.raw, HdrMinorVerOffset, 0)
	h.SetTotalSize(totalSize)
	h.RecomputeChecksum()
	return h
}

// RecomputeChecksum stamps the header checksum field using
// ChecksumOf(h.raw).
func (h Header) RecomputeChecksum() {
	PutU32(h.raw, HdrChecksumOffset, ChecksumOf(h.raw))
}

// ChecksumOK reports whether the stored checksum matches the computed one.
func (h Header) ChecksumOK() bool {
	return h.StoredChecksum() == ChecksumOf(h.raw)
}

// ChecksumOf computes the header checksum algorithm from spec §6: treat the
// header as an array of 32-bit little-endian words; the checksum field
// itself is read as zero; start c = 0; for each word, c =
// rotate_left(c XOR word, 1).
func ChecksumOf(header []byte) uint32 {
	if len(header) < HeaderSize {
		// defensive: callers always pass a full header, but never panic on
		// a short buffer.
		return 0
	}
	var c uint32
	for off := 0; off < HeaderSize; off += 4 {
		var word uint32
		if off == HdrChecksumOffset {
			word = 0
		} else {
			word = ReadU32(header, off)
		}
		c = bits.RotateLeft32(c^word, 1)
	}
	return c
}

// VerifyChecksum is a standalone verification entry point that does not
// require a parsed Header (used by integrity_check on a raw byte image).
func VerifyChecksum(header []byte) bool {
	if len(header) < HeaderSize {
		return false
	}
	stored := ReadU32(header, HdrChecksumOffset)
	return stored == ChecksumOf(header)
}

// HasSignature is a small helper used by higher layers that want to check
// the magic without fully parsing the header (e.g. before deciding whether
// a file even looks like a hive).
func HasSignature(b []byte) bool {
	if len(b) < HdrMagicOffset+4 {
		return false
	}
	var magic [4]byte
	PutU32(magic[:], 0, Magic)
	return bytes.Equal(b[HdrMagicOffset:HdrMagicOffset+4], magic[:])
}
