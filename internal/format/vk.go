package format

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/internal/buf"
)

// VKRecord is the decoded payload of a value cell (spec §3: "type tag, data
// length, inline-or-external data offset").
//
//	Offset  Size  Field
//	0x00    4     Type tag (ValType*)
//	0x04    4     Data length; high bit set => inline, low 31 bits = length
//	0x08    4     Inline data (if <=4 bytes) or cell offset of a "db" cell
//	0x0C    2     Name length (bytes, UTF-16LE)
//	0x0E    n     Name bytes
type VKRecord struct {
	Type       uint32
	DataLen    uint32 // actual length, inline bit stripped
	Inline     bool
	DataOrOff  uint32 // inline bytes (little-endian) or external cell offset
	NameRaw    []byte
}

// DecodeVK decodes a VK record payload.
func DecodeVK(b []byte) (VKRecord, error) {
	if len(b) < VKFixedHeaderSize {
		return VKRecord{}, fmt.Errorf("vk: %w (have %d, need %d)", ErrTruncated, len(b), VKFixedHeaderSize)
	}
	rawLen := ReadU32(b, VKDataLenOffset)
	nameLen, err := CheckedReadU16(b, VKNameLenOffset)
	if err != nil {
		return VKRecord{}, fmt.Errorf("vk name length: %w", err)
	}
	name, ok := buf.Slice(b, VKNameOffset, int(nameLen))
	if !ok {
		return VKRecord{}, fmt.Errorf("vk name: %w", ErrTruncated)
	}
	return VKRecord{
		Type:      ReadU32(b, VKTypeOffset),
		DataLen:   rawLen & VKDataLenMask,
		Inline:    rawLen&VKInlineBit != 0,
		DataOrOff: ReadU32(b, VKDataOffOffset),
		NameRaw:   name,
	}, nil
}

// EncodedSize returns the total payload size needed to encode this record.
func (vk VKRecord) EncodedSize() int {
	return VKFixedHeaderSize + len(vk.NameRaw)
}

// EncodeVK writes vk into b, which must be at least vk.EncodedSize() bytes.
func EncodeVK(b []byte, vk VKRecord) {
	rawLen := vk.DataLen & VKDataLenMask
	if vk.Inline {
		rawLen |= VKInlineBit
	}
	PutU32(b, VKTypeOffset, vk.Type)
	PutU32(b, VKDataLenOffset, rawLen)
	PutU32(b, VKDataOffOffset, vk.DataOrOff)
	PutU16(b, VKNameLenOffset, uint16(len(vk.NameRaw)))
	copy(b[VKNameOffset:], vk.NameRaw)
}
