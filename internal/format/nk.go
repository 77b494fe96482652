package format

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/internal/buf"
)

// NKRecord is the decoded payload of a key cell (spec §3: "parent offset,
// subkey-list offset, value-list offset, security offset, counts,
// variable-length name suffix").
//
//	Offset  Size  Field
//	0x00    4     Parent cell offset
//	0x04    4     Subkey-list cell offset (InvalidOffset if none)
//	0x08    4     Value-list cell offset (InvalidOffset if none)
//	0x0C    4     Security cell offset (InvalidOffset if none)
//	0x10    4     Subkey count
//	0x14    4     Value count
//	0x18    2     Name length (bytes, UTF-16LE)
//	0x1A    n     Name bytes
type NKRecord struct {
	ParentOffset     uint32
	SubkeyListOffset uint32
	ValueListOffset  uint32
	SecurityOffset   uint32
	SubkeyCount      uint32
	ValueCount       uint32
	NameRaw          []byte // UTF-16LE, not copied
}

// DecodeNK decodes an NK record payload (b excludes the cell header).
func DecodeNK(b []byte) (NKRecord, error) {
	if len(b) < NKFixedHeaderSize {
		return NKRecord{}, fmt.Errorf("nk: %w (have %d, need %d)", ErrTruncated, len(b), NKFixedHeaderSize)
	}
	nameLen, err := CheckedReadU16(b, NKNameLenOffset)
	if err != nil {
		return NKRecord{}, fmt.Errorf("nk name length: %w", err)
	}
	name, ok := buf.Slice(b, NKNameOffset, int(nameLen))
	if !ok {
		return NKRecord{}, fmt.Errorf("nk name: %w", ErrTruncated)
	}
	return NKRecord{
		ParentOffset:     ReadU32(b, NKParentOffset),
		SubkeyListOffset: ReadU32(b, NKSubkeyListOffset),
		ValueListOffset:  ReadU32(b, NKValueListOffset),
		SecurityOffset:   ReadU32(b, NKSecurityOffset),
		SubkeyCount:      ReadU32(b, NKSubkeyCountOffset),
		ValueCount:       ReadU32(b, NKValueCountOffset),
		NameRaw:          name,
	}, nil
}

// EncodedSize returns the total payload size (fixed header + name) needed
// to encode this record.
func (nk NKRecord) EncodedSize() int {
	return NKFixedHeaderSize + len(nk.NameRaw)
}

// EncodeNK writes nk into b, which must be at least nk.EncodedSize() bytes.
func EncodeNK(b []byte, nk NKRecord) {
	PutU32(b, NKParentOffset, nk.ParentOffset)
	PutU32(b, NKSubkeyListOffset, nk.SubkeyListOffset)
	PutU32(b, NKValueListOffset, nk.ValueListOffset)
	PutU32(b, NKSecurityOffset, nk.SecurityOffset)
	PutU32(b, NKSubkeyCountOffset, nk.SubkeyCount)
	PutU32(b, NKValueCountOffset, nk.ValueCount)
	PutU16(b, NKNameLenOffset, uint16(len(nk.NameRaw)))
	copy(b[NKNameOffset:], nk.NameRaw)
}
