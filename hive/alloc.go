package hive

import (
	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// Allocate reserves a cell with at least payloadSize usable bytes and
// returns its CellRef. It returns (0, nil) on exhaustion — the store never
// grows its image (spec §4.A: "Returns 0 on exhaustion").
//
// Strategy (spec §4.A): round the requested payload up to a multiple of 8,
// add the 8-byte prefix, then scan free cells from the start of the data
// region in offset order and take the first one at least that large
// (first-fit). If the remainder after taking the needed bytes is strictly
// larger than one cell header (8 bytes), split it off as a new free cell;
// otherwise the whole cell is handed over to avoid a zero-payload
// fragment. Grounded on the teacher's hive/alloc/bump.go allocation shape,
// adapted from bump-pointer-only to first-fit-with-split per the spec.
func (s *Store) Allocate(payloadSize int) (CellRef, []byte, error) {
	if payloadSize < 0 {
		return 0, nil, ErrInvalidRef
	}
	need := int(format.Align8(int32(payloadSize))) + format.CellHeaderSize

	s.mu.Lock()
	defer s.mu.Unlock()

	total := len(s.data)
	off := format.HeaderSize
	for off < total {
		h, err := format.ReadCellHeader(s.data[off:])
		if err != nil {
			return 0, nil, ErrCorrupt
		}
		if int(h.Size) <= 0 {
			return 0, nil, ErrCorrupt
		}
		if h.State == format.CellFree && int(h.Size) >= need {
			return s.splitAndTake(off, int(h.Size), need)
		}
		off += int(h.Size)
	}
	if off != total {
		return 0, nil, ErrCorrupt
	}
	return 0, nil, nil
}

// splitAndTake carves `need` bytes out of the free cell at off (whose total
// size is cellSize), splitting off a remainder free cell when there is
// enough left over, and marks the taken cell allocated with a zeroed
// signature and flags (the caller stamps the real signature once it knows
// what kind of record it is writing).
func (s *Store) splitAndTake(off, cellSize, need int) (CellRef, []byte, error) {
	remainder := cellSize - need
	takeSize := cellSize
	if remainder > format.CellHeaderSize {
		takeSize = need
	}

	format.PutCellHeader(s.data[off:], format.CellHeader{
		State:     format.CellAllocated,
		Size:      uint32(takeSize),
		Signature: format.SigFree, // zeroed; caller stamps real signature
		Flags:     0,
	})

	if takeSize != cellSize {
		freeOff := off + takeSize
		freeSize := cellSize - takeSize
		format.PutCellHeader(s.data[freeOff:], format.CellHeader{
			State:     format.CellFree,
			Size:      uint32(freeSize),
			Signature: format.SigFree,
			Flags:     0,
		})
	}

	s.markDirty()
	payload := s.data[off+format.CellHeaderSize : off+takeSize]
	return CellRef(off), payload, nil
}

// Free marks the cell at ref free, then coalesces it with its immediate
// neighbors (spec §4.A: "Coalesces with the immediate next cell if free
// (O(1)); then coalesces with the previous cell by rescanning from
// sizeof(header) (O(n))"). It is an error to free a cell that is already
// free.
func (s *Store) Free(ref CellRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.freeLocked(ref)
}

func (s *Store) freeLocked(ref CellRef) error {
	off := int(ref)
	if off < format.HeaderSize || off+format.CellHeaderSize > len(s.data) {
		return ErrInvalidRef
	}
	h, err := format.ReadCellHeader(s.data[off:])
	if err != nil {
		return ErrCorrupt
	}
	if h.State != format.CellAllocated {
		return ErrFreeCell
	}

	h.State = format.CellFree
	h.Signature = format.SigFree
	h.Flags = 0
	format.PutCellHeader(s.data[off:], h)
	size := int(h.Size)

	// Forward coalesce: O(1), the next cell (if any) sits immediately after.
	nextOff := off + size
	if nextOff < len(s.data) {
		nh, err := format.ReadCellHeader(s.data[nextOff:])
		if err == nil && nh.State == format.CellFree {
			size += int(nh.Size)
			format.PutCellHeader(s.data[off:], format.CellHeader{
				State: format.CellFree, Size: uint32(size),
			})
		}
	}

	// Backward coalesce: O(n) rescan from the start of the data region to
	// find the cell immediately preceding off.
	prevOff, prevSize, found := s.findPrevious(off)
	if found {
		ph, err := format.ReadCellHeader(s.data[prevOff:])
		if err == nil && ph.State == format.CellFree && prevOff+prevSize == off {
			merged := prevSize + size
			format.PutCellHeader(s.data[prevOff:], format.CellHeader{
				State: format.CellFree, Size: uint32(merged),
			})
		}
	}

	s.markDirty()
	return nil
}

// findPrevious rescans from the start of the data region and returns the
// offset and size of the cell immediately preceding target, if any.
func (s *Store) findPrevious(target int) (off, size int, ok bool) {
	cur := format.HeaderSize
	for cur < target {
		h, err := format.ReadCellHeader(s.data[cur:])
		if err != nil {
			return 0, 0, false
		}
		if int(h.Size) <= 0 {
			return 0, 0, false
		}
		if cur+int(h.Size) == target {
			return cur, int(h.Size), true
		}
		cur += int(h.Size)
	}
	return 0, 0, false
}

// Resize changes the usable payload of ref to at least newSize bytes. It is
// not required to preserve the offset (spec §4.A); the simplest correct
// implementation frees the old cell and allocates a new one, copying the
// smaller of the two payload lengths across.
func (s *Store) Resize(ref CellRef, newSize int) (CellRef, []byte, error) {
	s.mu.Lock()
	old, err := s.getLocked(ref, 0)
	s.mu.Unlock()
	if err != nil {
		return 0, nil, err
	}

	newRef, newPayload, err := s.Allocate(newSize)
	if err != nil {
		return 0, nil, err
	}
	if newRef == 0 {
		return 0, nil, ErrExhausted
	}

	n := len(old)
	if n > len(newPayload) {
		n = len(newPayload)
	}
	copy(newPayload, old[:n])

	if err := s.Free(ref); err != nil {
		return 0, nil, err
	}
	return newRef, newPayload, nil
}
