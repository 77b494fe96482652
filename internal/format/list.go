package format

import "fmt"

// LFRecord is the decoded payload of a subkeys-list cell: a plain array of
// child cell offsets (spec §3: "subkeys"). No hashing is kept — the spec's
// "lf" tag is the only subkey-list variant in this design, unlike the real
// registry's lf/lh/li/ri family.
type LFRecord struct {
	Offsets []uint32 // decoded into a fresh slice, not a view into the cell payload
}

// DecodeLF decodes an LF record payload.
func DecodeLF(b []byte) (LFRecord, error) {
	if len(b) < LFFixedHeaderSize {
		return LFRecord{}, fmt.Errorf("lf: %w", ErrTruncated)
	}
	count := ReadU32(b, LFCountOffset)
	need := LFFixedHeaderSize + int(count)*LFEntrySize
	if len(b) < need {
		return LFRecord{}, fmt.Errorf("lf: %w (have %d, need %d)", ErrTruncated, len(b), need)
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i] = ReadU32(b, LFListOffset+i*LFEntrySize)
	}
	return LFRecord{Offsets: offsets}, nil
}

// EncodedSize returns the payload size needed to hold this list.
func (lf LFRecord) EncodedSize() int {
	return LFFixedHeaderSize + len(lf.Offsets)*LFEntrySize
}

// EncodeLF writes lf into b, which must be at least lf.EncodedSize() bytes.
func EncodeLF(b []byte, lf LFRecord) {
	PutU32(b, LFCountOffset, uint32(len(lf.Offsets)))
	for i, off := range lf.Offsets {
		PutU32(b, LFListOffset+i*LFEntrySize, off)
	}
}
