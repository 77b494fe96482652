package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

// Statistics summarizes a single pass over Walk (spec §4.A).
type Statistics struct {
	AllocatedCells  int
	FreeCells       int
	TotalSize       int
	FreeSize        int
	LargestFreeCell int
	// Fragmentation is a single-number quality metric (glossary): one
	// hundred times the count of free cells per KiB of the hive, scaled
	// down by how much of
	// the free space sits in one contiguous block (a hive with a few huge
	// free cells is less fragmented than one with many tiny ones of the
	// same total size).
	Fragmentation float64
}

// Statistics computes Statistics with a single Walk pass.
func (s *Store) Statistics() (Statistics, error) {
	var st Statistics
	st.TotalSize = s.Size()

	err := s.Walk(func(c CellInfo) bool {
		switch c.State {
		case format.CellAllocated:
			st.AllocatedCells++
		case format.CellFree:
			st.FreeCells++
			st.FreeSize += int(c.Size)
			if int(c.Size) > st.LargestFreeCell {
				st.LargestFreeCell = int(c.Size)
			}
		}
		return true
	})
	if err != nil {
		return Statistics{}, err
	}

	kib := st.TotalSize / 1024
	if kib < 1 {
		kib = 1
	}
	base := float64(st.FreeCells*100) / float64(kib)
	largestRatio := 0.0
	if st.FreeSize > 0 {
		largestRatio = float64(st.LargestFreeCell) / float64(st.FreeSize)
	}
	st.Fragmentation = base * (1 - largestRatio)

	return st, nil
}
