package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// allocatedCell is one entry collected by the first pass of Compact.
type allocatedCell struct {
	off  int
	size int
	sig  uint16
}

// Compact performs the two-cursor sweep described in spec §4.A: a read
// cursor walks allocated cells in offset order while a write cursor packs
// them toward the front of the data region; the tail becomes one trailing
// free cell. Every cell-offset field inside a moved cell's payload is
// rewritten so the key tree stays reachable (relocatePayload) — without
// this the root/parent/subkey/value pointers would point at stale
// locations and invariant 3 (spec §8) would break across a compact.
//
// All existing CellRefs are invalid after Compact returns (spec: exclusive
// compaction, hard contract per §9's resolved open question). Compact
// refuses to run while any MapView is outstanding.
func (s *Store) Compact() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.views > 0 {
		return ErrViewsOutstanding
	}

	var cells []allocatedCell
	err := s.walkLocked(func(c CellInfo) bool {
		if c.State == format.CellAllocated {
			cells = append(cells, allocatedCell{off: int(c.Ref), size: int(c.Size), sig: c.Signature})
		}
		return true
	})
	if err != nil {
		return err
	}

	m := make(relocateMap, len(cells))
	cursor := format.HeaderSize
	for _, c := range cells {
		m[uint32(c.off)] = uint32(cursor)
		cursor += c.size
	}

	writeCursor := format.HeaderSize
	for _, c := range cells {
		payload := s.data[c.off+format.CellHeaderSize : c.off+c.size]
		relocatePayload(payload, c.sig, m)
		if writeCursor != c.off {
			copy(s.data[writeCursor:writeCursor+c.size], s.data[c.off:c.off+c.size])
		}
		writeCursor += c.size
	}

	tail := len(s.data) - writeCursor
	if tail > 0 {
		format.PutCellHeader(s.data[writeCursor:], format.CellHeader{
			State: format.CellFree, Size: uint32(tail),
		})
	}

	h := s.Header()
	h.SetRootCell(m.apply(h.RootCell()))
	h.RecomputeChecksum()

	s.markDirty()
	return nil
}
