package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// CompactedCopy walks the source once, counting allocated cell bytes,
// allocates a destination sized to that total plus a one-page margin, and
// copies allocated cells sequentially into it with a single trailing free
// cell (spec §4.A). Unlike Compact, the source is left untouched.
func (s *Store) CompactedCopy() (*Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cells []allocatedCell
	var total int
	err := s.walkLocked(func(c CellInfo) bool {
		if c.State == format.CellAllocated {
			cells = append(cells, allocatedCell{off: int(c.Ref), size: int(c.Size), sig: c.Signature})
			total += int(c.Size)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	const margin = format.HeaderSize
	destSize := format.HeaderSize + total + margin

	dst, err := Create(destSize)
	if err != nil {
		return nil, err
	}

	m := make(relocateMap, len(cells))
	cursor := format.HeaderSize
	for _, c := range cells {
		m[uint32(c.off)] = uint32(cursor)
		cursor += c.size
	}

	writeCursor := format.HeaderSize
	for _, c := range cells {
		dstOff := int(m[uint32(c.off)])
		copy(dst.data[dstOff:dstOff+c.size], s.data[c.off:c.off+c.size])
		dstPayload := dst.data[dstOff+format.CellHeaderSize : dstOff+c.size]
		relocatePayload(dstPayload, c.sig, m)
		writeCursor = dstOff + c.size
	}

	tail := destSize - writeCursor
	if tail > 0 {
		format.PutCellHeader(dst.data[writeCursor:], format.CellHeader{
			State: format.CellFree, Size: uint32(tail),
		})
	}

	h := s.Header()
	dst.SetRoot(CellRef(m.apply(h.RootCell())))

	return dst, nil
}
