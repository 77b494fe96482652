package sched

import (
	"sort"
	"sync"

	"github.com/arizkami/aurora-kernel-sub000/kernel"
)

// deadline is one sleeping thread's wakeup entry.
type deadline struct {
	tid      kernel.ThreadID
	at       int64 // absolute millisecond deadline
	sequence uint64 // insertion order, for FIFO tie-break
}

// TimerWheel tracks sleeping threads under its own mutex, separate from the
// Scheduler's lock, and wakes those whose deadline has passed, in
// deadline-then-FIFO order (spec
// §4.E: sleep(ms); "wakeup order among expired threads is by deadline
// then FIFO").
type TimerWheel struct {
	mu      sync.Mutex
	entries []deadline
	seq     uint64
}

// NewTimerWheel returns an empty wheel.
func NewTimerWheel() *TimerWheel {
	return &TimerWheel{}
}

// Schedule registers tid to wake at atMillis.
func (w *TimerWheel) Schedule(tid kernel.ThreadID, atMillis int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	w.entries = append(w.entries, deadline{tid: tid, at: atMillis, sequence: w.seq})
}

// Expire removes and returns every entry whose deadline is <= nowMillis,
// ordered by deadline then insertion order.
func (w *TimerWheel) Expire(nowMillis int64) []kernel.ThreadID {
	w.mu.Lock()
	defer w.mu.Unlock()

	var expired, remaining []deadline
	for _, e := range w.entries {
		if e.at <= nowMillis {
			expired = append(expired, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	w.entries = remaining

	sort.Slice(expired, func(i, j int) bool {
		if expired[i].at != expired[j].at {
			return expired[i].at < expired[j].at
		}
		return expired[i].sequence < expired[j].sequence
	})

	out := make([]kernel.ThreadID, len(expired))
	for i, e := range expired {
		out[i] = e.tid
	}
	return out
}

// Len reports how many threads are currently sleeping.
func (w *TimerWheel) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}
