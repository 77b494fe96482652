package hive

import "github.com/arizkami/aurora-kernel-sub000/internal/format"

const pageSize = 4096

func alignDown(n int) int { return n &^ (pageSize - 1) }
func alignUp(n int) int   { return (n + pageSize - 1) &^ (pageSize - 1) }

// View is a virtual window over a page-aligned expansion of a requested
// byte range (spec §4.A: map_view). It is reference-counted; Release must
// be called exactly once per MapView call that returned it.
type View struct {
	s          *Store
	start, end int // page-aligned, absolute offsets into s.data
	refs       *int
}

// Bytes returns the mapped window. The slice remains valid until the last
// Release on this view (or any view sharing its range) runs.
func (v *View) Bytes() []byte {
	return v.s.data[v.start:v.end]
}

// Release drops a reference to the view. When the last reference is
// released and the hive is dirty, Flush is called (spec: "Flush is called
// on release when dirty").
func (v *View) Release() {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	*v.refs--
	if *v.refs <= 0 {
		delete(v.s.openViews, viewKey{v.start, v.end})
		v.s.views--
		if v.s.dirty {
			v.s.flushLocked()
		}
	}
}

type viewKey struct{ start, end int }

// MapView returns a virtual window over [offset, offset+size) expanded to
// page boundaries. Overlapping requests whose page-aligned range is
// identical share the same underlying View and reference count; a request
// whose range is a subset of an already-open view reuses that view's
// wider window rather than opening a second overlapping one.
func (s *Store) MapView(offset, size int) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if offset < 0 || size < 0 || offset+size > len(s.data) {
		return nil, ErrInvalidRef
	}
	start := alignDown(offset)
	end := alignUp(offset + size)
	if end > len(s.data) {
		end = len(s.data)
	}

	if s.openViews == nil {
		s.openViews = make(map[viewKey]*int)
	}

	for k, refs := range s.openViews {
		if k.start <= start && end <= k.end {
			*refs++
			return &View{s: s, start: k.start, end: k.end, refs: refs}, nil
		}
	}

	refs := new(int)
	*refs = 1
	s.openViews[viewKey{start, end}] = refs
	s.views++
	return &View{s: s, start: start, end: end, refs: refs}, nil
}

// flushLocked is Flush's body, callable while s.mu is already held.
func (s *Store) flushLocked() {
	h, _ := format.ParseHeader(s.data)
	h.SetPrimarySeq(h.PrimarySeq() + 1)
	h.RecomputeChecksum()
	h.SetSecondarySeq(h.PrimarySeq())
	h.RecomputeChecksum()
	s.dirty = false
}
