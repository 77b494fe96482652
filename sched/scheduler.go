// Package sched implements the scheduler (spec §3, §4.E): five priority
// ready queues, the current-thread pointer, and the schedule/timer_tick/
// yield/sleep policy built on top of kernel's thread records.
//
// No direct teacher analogue exists for a ready-queue scheduler in the
// hive-engine pack; this package follows the spec's own state machine
// (§4.E/§5) and keeps the teacher's lock-discipline commenting style from
// hive/alloc/fastalloc.go ("no lock held across a suspension point" —
// spec §5 states the same rule for thread suspension points).
package sched

import (
	"log/slog"
	"sync"

	"github.com/arizkami/aurora-kernel-sub000/ipc"
	"github.com/arizkami/aurora-kernel-sub000/kernel"
)

// TimeSlice is the tick count a thread is given each time it becomes
// current. The spec leaves the quantum unspecified beyond "10ms per tick
// for priorities below realtime" (§4.E); this package fixes it at one
// slice of this many ticks.
const TimeSlice = 4

// readyQueue is a FIFO of thread ids (spec §4.E: "ties within a queue are
// FIFO").
type readyQueue struct {
	ids []kernel.ThreadID
}

func (q *readyQueue) pushBack(id kernel.ThreadID) { q.ids = append(q.ids, id) }

func (q *readyQueue) popFront() (kernel.ThreadID, bool) {
	if len(q.ids) == 0 {
		return 0, false
	}
	id := q.ids[0]
	q.ids = q.ids[1:]
	return id, true
}

func (q *readyQueue) empty() bool { return len(q.ids) == 0 }

// Scheduler holds the five ready queues and the current-thread pointer
// (spec §4.E: "the scheduler holds the global current-thread pointer").
type Scheduler struct {
	mu sync.Mutex

	queues     [5]readyQueue // indexed by kernel.Priority
	current    kernel.ThreadID
	hasCurrent bool

	k     *kernel.Kernel
	arch  kernel.Arch
	wheel *TimerWheel
	log   *slog.Logger
}

// Option configures a Scheduler at construction time, following the same
// shape as hive.Store's Option (hive/store.go).
type Option func(*Scheduler)

// WithLogger attaches a structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) { s.log = l }
}

// New constructs a Scheduler bound to k for thread-state transitions and
// arch for context switches.
func New(k *kernel.Kernel, arch kernel.Arch, opts ...Option) *Scheduler {
	s := &Scheduler{
		k:     k,
		arch:  arch,
		wheel: NewTimerWheel(),
		log:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start makes tid ready to run for the first time (spec §3: thread
// lifecycle "initialized -> ready"; §4.D: "start enqueues as ready").
func (s *Scheduler) Start(tid kernel.ThreadID) error {
	prio, err := s.k.Priority(tid)
	if err != nil {
		return err
	}
	if err := s.k.SetThreadState(tid, kernel.ThreadReady); err != nil {
		return err
	}
	if err := s.k.ResetTimeSlice(tid, TimeSlice); err != nil {
		return err
	}
	s.mu.Lock()
	s.queues[prio].pushBack(tid)
	s.mu.Unlock()
	return nil
}

// Current returns the currently running thread, if any.
func (s *Scheduler) Current() (kernel.ThreadID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.hasCurrent
}

// Schedule picks the head of the highest non-empty ready queue strictly
// above the current thread's priority; on a tie at the current thread's
// own priority it picks that queue's head only if the current thread has
// exhausted its time-slice, otherwise it keeps running the current thread
// (spec §4.E: schedule()).
func (s *Scheduler) Schedule() (kernel.ThreadID, bool) {
	s.mu.Lock()

	var curPrio kernel.Priority = -1
	var curSlice int
	if s.hasCurrent {
		if p, err := s.k.Priority(s.current); err == nil {
			curPrio = p
		}
		curSlice, _ = s.sliceOf(s.current)
	}

	next, picked := kernel.ThreadID(0), false
	for prio := kernel.Priority(4); prio >= 0; prio-- {
		if prio < curPrio {
			break
		}
		if prio == curPrio {
			if curSlice > 0 {
				break // keep running the current thread
			}
			if id, ok := s.queues[prio].popFront(); ok {
				next, picked = id, true
			}
			break
		}
		if id, ok := s.queues[prio].popFront(); ok {
			next, picked = id, true
			break
		}
	}

	old := s.current
	hadCurrent := s.hasCurrent
	if !picked {
		s.mu.Unlock()
		if hadCurrent {
			return old, true
		}
		return 0, false
	}

	// If the outgoing thread is still runnable (time-slice not exhausted,
	// state unchanged by a suspension call), put it back at the tail of
	// its own queue before switching away from it.
	if hadCurrent && old != next {
		if st, err := s.k.State(old); err == nil && st == kernel.ThreadRunning {
			s.queues[curPrio].pushBack(old)
			_ = s.k.SetThreadState(old, kernel.ThreadReady)
		}
	}

	s.current = next
	s.hasCurrent = true
	s.mu.Unlock()

	_ = s.k.SetThreadState(next, kernel.ThreadRunning)

	// s.current still names the thread that last ran even after TimerTick or
	// Sleep cleared hasCurrent, so the switch away from it happens here too.
	if old != 0 && old != next {
		oldCtx, errOld := s.k.ContextPtr(old)
		newCtx, errNew := s.k.ContextPtr(next)
		if errOld == nil && errNew == nil {
			s.arch.SwitchContext(oldCtx, newCtx)
		}
	}
	return next, true
}

func (s *Scheduler) sliceOf(tid kernel.ThreadID) (int, error) {
	th, err := s.k.Thread(tid)
	if err != nil {
		return 0, err
	}
	return th.TimeSlice, nil
}

// TimerTick decrements the current thread's time-slice; on reaching zero
// it is appended to the tail of its ready queue, given a fresh slice, and
// Schedule is called (spec §4.E: timer_tick()).
func (s *Scheduler) TimerTick() (kernel.ThreadID, bool) {
	s.mu.Lock()
	cur, has := s.current, s.hasCurrent
	s.mu.Unlock()
	if !has {
		return 0, false
	}

	remaining, err := s.k.DecrementTimeSlice(cur)
	if err != nil {
		return 0, false
	}
	if remaining > 0 {
		return cur, true
	}

	prio, err := s.k.Priority(cur)
	if err != nil {
		return 0, false
	}
	_ = s.k.ResetTimeSlice(cur, TimeSlice)

	s.mu.Lock()
	s.queues[prio].pushBack(cur)
	s.hasCurrent = false
	s.mu.Unlock()
	_ = s.k.SetThreadState(cur, kernel.ThreadReady)
	s.log.Debug("time slice expired", "thread", cur, "priority", prio)

	return s.Schedule()
}

// Yield forces the current thread's time-slice to zero for one round,
// then reschedules (spec §4.E: yield()).
func (s *Scheduler) Yield() (kernel.ThreadID, bool) {
	s.mu.Lock()
	cur, has := s.current, s.hasCurrent
	s.mu.Unlock()
	if has {
		_ = s.k.ResetTimeSlice(cur, 0)
	}
	return s.Schedule()
}

// Sleep transitions the current thread to waiting, registers a wakeup
// deadline on the timer wheel, and reschedules (spec §4.E: sleep(ms)).
func (s *Scheduler) Sleep(nowMillis int64, ms int64) (kernel.ThreadID, bool) {
	s.mu.Lock()
	cur, has := s.current, s.hasCurrent
	s.hasCurrent = false
	s.mu.Unlock()
	if !has {
		return s.Schedule()
	}
	_ = s.k.SetThreadState(cur, kernel.ThreadWaiting)
	s.wheel.Schedule(cur, nowMillis+ms)
	return s.Schedule()
}

// ExpireSleeps wakes every thread whose sleep deadline has passed as of
// nowMillis, in deadline-then-FIFO order (spec §4.E: "wakeup order among
// expired threads is by deadline then FIFO"), and returns them to their
// ready queue.
func (s *Scheduler) ExpireSleeps(nowMillis int64) []kernel.ThreadID {
	woken := s.wheel.Expire(nowMillis)
	if len(woken) > 0 {
		s.log.Debug("timer wheel woke sleeping threads", "count", len(woken), "now", nowMillis)
	}
	for _, tid := range woken {
		prio, err := s.k.Priority(tid)
		if err != nil {
			continue
		}
		_ = s.k.SetThreadState(tid, kernel.ThreadReady)
		_ = s.k.ResetTimeSlice(tid, TimeSlice)
		s.mu.Lock()
		s.queues[prio].pushBack(tid)
		s.mu.Unlock()
	}
	return woken
}

// MarkReady implements ipc.Readier (spec §4.C post_receive, §4.E "waiting
// -> ready on IPC delivery"): a thread that was blocked sending to a full
// mailbox rejoins its ready queue once the receiver drains it.
func (s *Scheduler) MarkReady(id ipc.SenderID) {
	tid := kernel.ThreadID(id)
	prio, err := s.k.Priority(tid)
	if err != nil {
		return
	}
	_ = s.k.SetThreadState(tid, kernel.ThreadReady)
	_ = s.k.ResetTimeSlice(tid, TimeSlice)
	s.mu.Lock()
	s.queues[prio].pushBack(tid)
	s.mu.Unlock()
}

// ReadyLen reports how many threads are queued at priority, for tests and
// the TUI dashboard.
func (s *Scheduler) ReadyLen(prio kernel.Priority) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queues[prio].ids)
}
