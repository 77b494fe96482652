// Package hive implements the cell store (spec §4.A): a self-describing,
// checksum-protected byte image divided into a fixed header followed by a
// packed sequence of variable-length cells. It is the lowest component in
// the dependency graph (spec §2) — nothing else in this repository reaches
// into a hive's bytes except through this package.
//
// Grounded on the teacher's hive/base.go (header/checksum shape) and
// hive/alloc/bump.go + hive/alloc/fastalloc.go (allocate/free/coalesce
// discipline), adapted to the spec's simpler single-region layout (no HBIN
// indirection) and its linear first-fit + coalescing contract.
package hive

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/arizkami/aurora-kernel-sub000/internal/format"
)

// CellRef is a stable 32-bit byte offset into a hive image, from the base
// of the image (i.e. including the header). It is the "cell handle"
// referred to throughout spec §4.A.
type CellRef uint32

// Store is the cell store engine. All structural mutation goes through its
// lock (spec §5: "a hive-level lock serializes all allocate/free/resize/
// walk/compact"); reads of a single payload slice are safe without the lock
// only because the returned view is invalidated by the next mutation, per
// the documented contract on Get.
type Store struct {
	mu        sync.Mutex
	data      []byte
	dirty     bool
	views     int // outstanding MapView reference count
	openViews map[viewKey]*int
	log       *slog.Logger
	onGrow    func(newSize int) ([]byte, error) // collaborator hook for resizing storage
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Create allocates a fresh, zeroed hive image of the given total size and
// writes a valid header plus one maximal free cell (spec §3: hive
// lifecycle, "created by allocating a zeroed region and writing a valid
// header + one maximal free cell").
func Create(size int, opts ...Option) (*Store, error) {
	if size <= format.HeaderSize+format.CellHeaderSize {
		return nil, fmt.Errorf("hive: size %d too small for header+cell", size)
	}
	data := make([]byte, size)
	format.InitHeader(data, uint32(size))

	s := &Store{data: data, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}

	freeSize := size - format.HeaderSize
	h, _ := format.ReadCellHeader(data[format.HeaderSize:]) // zero value, state free
	h.State = format.CellFree
	h.Size = uint32(freeSize)
	h.Signature = format.SigFree
	format.PutCellHeader(data[format.HeaderSize:], h)

	s.markDirty()
	return s, nil
}

// Open wraps an existing byte image (e.g. a memory-mapped file) as a Store
// without copying. The caller is responsible for keeping data alive and for
// calling IntegrityCheck before trusting its contents.
func Open(data []byte, opts ...Option) (*Store, error) {
	if len(data) < format.HeaderSize {
		return nil, fmt.Errorf("hive: %w", format.ErrTruncated)
	}
	if _, err := format.ParseHeader(data); err != nil {
		return nil, err
	}
	s := &Store{data: data, log: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Bytes returns the entire backing image. Callers must not retain or mutate
// the returned slice across a Store mutation.
func (s *Store) Bytes() []byte { return s.data }

// Size returns the total image size in bytes.
func (s *Store) Size() int { return len(s.data) }

// Header returns a decoded view of the 4096-byte header.
func (s *Store) Header() format.Header {
	h, _ := format.ParseHeader(s.data)
	return h
}

// Dirty reports whether the image has unflushed structural changes.
func (s *Store) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Store) markDirty() {
	s.dirty = true
}

// Flush stamps the header (bumping the primary sequence number before the
// write and the secondary after, per spec §9's torn-write hint) and clears
// the dirty flag. It is the only path that returns the image ready for
// durable storage (spec §3: "flush is the only path that stamps the header
// and returns the image to storage").
func (s *Store) Flush() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	// In a real torn-write protocol the secondary sequence would be bumped
	// only after the cell region itself is durably written; since Store
	// holds everything in one in-memory image, both updates in flushLocked
	// are atomic from the caller's point of view.
	s.flushLocked()
	s.log.Debug("hive flushed", "size", len(s.data), "root", s.Header().RootCell())
	return s.data
}

// SetRoot updates the header's root-cell offset and recomputes the
// checksum. Offset is relative to the base of the image (cell-ref form).
func (s *Store) SetRoot(ref CellRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h := s.Header()
	h.SetRootCell(uint32(ref))
	h.RecomputeChecksum()
	s.markDirty()
}

// Root returns the current root cell reference.
func (s *Store) Root() CellRef {
	return CellRef(s.Header().RootCell())
}
