package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// cellAt validates ref and returns its decoded header plus the offset of
// its payload. It does not check allocation state; callers do that.
func (s *Store) cellAt(ref CellRef) (format.CellHeader, int, error) {
	off := int(ref)
	if off < format.HeaderSize || off+format.CellHeaderSize > len(s.data) {
		return format.CellHeader{}, 0, ErrInvalidRef
	}
	h, err := format.ReadCellHeader(s.data[off:])
	if err != nil {
		return format.CellHeader{}, 0, ErrCorrupt
	}
	if off+int(h.Size) > len(s.data) {
		return format.CellHeader{}, 0, ErrCorrupt
	}
	return h, off, nil
}

// Get returns a view over a cell's payload (spec §4.A). If size is 0 the
// entire payload is returned; otherwise the cell must have capacity for at
// least size bytes and the returned slice is exactly that length. The
// returned slice is invalidated by any subsequent Allocate, Free, Resize,
// or Compact call (spec: "the returned view is invalidated by any
// subsequent allocate, free, resize, or compact").
func (s *Store) Get(ref CellRef, size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getLocked(ref, size)
}

func (s *Store) getLocked(ref CellRef, size int) ([]byte, error) {
	h, off, err := s.cellAt(ref)
	if err != nil {
		return nil, err
	}
	if h.State != format.CellAllocated {
		return nil, ErrFreeCell
	}
	payload := s.data[off+format.CellHeaderSize : off+int(h.Size)]
	if size == 0 {
		return payload, nil
	}
	if size > len(payload) {
		return nil, ErrTooSmall
	}
	return payload[:size], nil
}

// Write value-copies data into the cell at ref, starting at its payload
// offset, and marks the hive dirty. The cell must have capacity for
// len(data) bytes.
func (s *Store) Write(ref CellRef, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := s.getLocked(ref, len(data))
	if err != nil {
		return err
	}
	copy(payload, data)
	s.markDirty()
	return nil
}

// Read value-copies a cell's payload into out (len(out) bytes).
func (s *Store) Read(ref CellRef, out []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, err := s.getLocked(ref, len(out))
	if err != nil {
		return err
	}
	copy(out, payload)
	return nil
}

// SetSignature stamps a cell's signature and flags fields without touching
// its payload. Used right after Allocate, which always zeroes them.
func (s *Store) SetSignature(ref CellRef, sig, flags uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, off, err := s.cellAt(ref)
	if err != nil {
		return err
	}
	if h.State != format.CellAllocated {
		return ErrFreeCell
	}
	h.Signature = sig
	h.Flags = flags
	format.PutCellHeader(s.data[off:], h)
	s.markDirty()
	return nil
}

// Signature returns a cell's signature tag.
func (s *Store) Signature(ref CellRef) (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, _, err := s.cellAt(ref)
	if err != nil {
		return 0, err
	}
	return h.Signature, nil
}
