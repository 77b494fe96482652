package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// CellInfo is one entry produced by Walk.
type CellInfo struct {
	Ref       CellRef
	Size      uint32
	State     format.CellState
	Signature uint16
}

// Walk produces a lazy sequence of cells by stepping offset += |size|,
// starting at sizeof(header) (spec §4.A). yield is called once per cell in
// offset order; returning false from yield stops the walk early. Walk
// returns ErrCorrupt if stepping would overshoot header.TotalSize, and nil
// once offset reaches exactly header.TotalSize.
func (s *Store) Walk(yield func(CellInfo) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walkLocked(yield)
}

func (s *Store) walkLocked(yield func(CellInfo) bool) error {
	total := len(s.data)
	off := format.HeaderSize
	for off < total {
		h, err := format.ReadCellHeader(s.data[off:])
		if err != nil {
			return ErrCorrupt
		}
		if h.Size < format.CellHeaderSize {
			return ErrCorrupt
		}
		next := off + int(h.Size)
		if next > total {
			return ErrCorrupt
		}
		if !yield(CellInfo{Ref: CellRef(off), Size: h.Size, State: h.State, Signature: h.Signature}) {
			return nil
		}
		off = next
	}
	if off != total {
		return ErrCorrupt
	}
	return nil
}

// Validate checks a single CellRef against the structural bounds described
// in spec §4.A: sizeof(header) <= offset < header.size, |size| >= prefix,
// and offset+|size| <= header.size. An offset that is not 8-byte aligned is
// also rejected.
func (s *Store) Validate(ref CellRef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	off := int(ref)
	if off < format.HeaderSize || off >= len(s.data) {
		return ErrInvalidRef
	}
	if off%format.CellAlignment != 0 {
		return ErrInvalidRef
	}
	h, err := format.ReadCellHeader(s.data[off:])
	if err != nil {
		return ErrCorrupt
	}
	if h.Size < format.CellHeaderSize {
		return ErrInvalidRef
	}
	if off+int(h.Size) > len(s.data) {
		return ErrInvalidRef
	}
	return nil
}
