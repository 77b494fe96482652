package hive

import "errors"

// Sentinel errors surfaced by the cell store. These map onto the status
// taxonomy in spec §6; callers that need the stable 32-bit codes translate
// through the status package instead of matching on these directly.
var (
	// ErrInvalidRef indicates a CellRef failed Validate: out of range,
	// misaligned, or overshooting the image.
	ErrInvalidRef = errors.New("hive: invalid cell reference")
	// ErrFreeCell indicates an operation required an allocated cell but
	// found a free one.
	ErrFreeCell = errors.New("hive: cell is free")
	// ErrTooSmall indicates a Get/Write request exceeded the cell's
	// payload capacity.
	ErrTooSmall = errors.New("hive: requested size exceeds cell capacity")
	// ErrExhausted indicates Resize found no free cell large enough for the
	// new size; the store does not grow automatically. Allocate itself
	// reports exhaustion as a zero CellRef with a nil error.
	ErrExhausted = errors.New("hive: no free cell large enough")
	// ErrCorrupt indicates a structural invariant was violated; see
	// IntegrityCheck for the specific sub-kind.
	ErrCorrupt = errors.New("hive: corrupt image")
	// ErrViewsOutstanding indicates Compact was called while one or more
	// MapView handles were still open (spec §9: compaction is exclusive).
	ErrViewsOutstanding = errors.New("hive: cannot compact with outstanding map views")
)
