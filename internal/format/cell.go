package format

import "fmt"

// CellState is the in-memory reconstruction of a cell's allocation state.
// The on-disk encoding keeps the sign of a 32-bit size field as the
// allocation bit (spec §9: "Signed size sentinel in cell header ... in
// memory the cell state is a tagged variant Allocated(u32) | Free(u32)
// reconstructed on read"). Converting back to the signed disk form is
// confined to PutCellHeader.
type CellState int

const (
	// CellFree marks a cell available for allocation.
	CellFree CellState = iota
	// CellAllocated marks a cell currently in use.
	CellAllocated
)

// CellHeader is the decoded 8-byte prefix of a cell.
type CellHeader struct {
	State     CellState
	Size      uint32 // |disk size|, includes the 8-byte prefix
	Signature uint16
	Flags     uint16
}

// ReadCellHeader decodes the cell header at the start of b. b must be at
// least CellHeaderSize bytes.
func ReadCellHeader(b []byte) (CellHeader, error) {
	if len(b) < CellHeaderSize {
		return CellHeader{}, fmt.Errorf("cell header: %w", ErrTruncated)
	}
	raw := ReadI32(b, CellSizeOffset)
	state := CellAllocated
	size := raw
	if raw >= 0 {
		state = CellFree
	} else {
		size = -raw
	}
	return CellHeader{
		State:     state,
		Size:      uint32(size),
		Signature: ReadU16(b, CellSignatureOffset),
		Flags:     ReadU16(b, CellFlagsOffset),
	}, nil
}

// PutCellHeader encodes a cell header into b (must be at least
// CellHeaderSize bytes), translating the in-memory state back to the signed
// disk representation.
func PutCellHeader(b []byte, h CellHeader) {
	size := int32(h.Size)
	if h.State == CellAllocated {
		size = -size
	}
	PutI32(b, CellSizeOffset, size)
	PutU16(b, CellSignatureOffset, h.Signature)
	PutU16(b, CellFlagsOffset, h.Flags)
}

// PayloadLen returns the usable payload length of a cell (total size minus
// the 8-byte prefix).
func (h CellHeader) PayloadLen() uint32 {
	if h.Size < CellHeaderSize {
		return 0
	}
	return h.Size - CellHeaderSize
}
