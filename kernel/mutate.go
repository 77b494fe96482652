package kernel

import (
	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/ipc"
)

// This file exposes the small set of in-place mutators the scheduler
// package needs on thread records it does not itself own (spec §4.E
// schedule/timer_tick/sleep all transition thread state and time-slice
// counters that live in this package's tables).

// SetThreadState transitions tid's state (spec §5: "the scheduler is the
// only path that transitions threads between states" — enforced by
// convention, not by this package, since sched imports kernel and must be
// able to call this).
func (k *Kernel) SetThreadState(tid ThreadID, state ThreadState) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return err
	}
	p.threads[slot].State = state
	return nil
}

// ResetTimeSlice sets tid's remaining time-slice ticks to n (spec §4.E
// timer_tick: "zero-initialize a fresh slice" uses this with the
// scheduler's configured per-round quantum).
func (k *Kernel) ResetTimeSlice(tid ThreadID, n int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return err
	}
	p.threads[slot].TimeSlice = n
	return nil
}

// DecrementTimeSlice decrements tid's time-slice by one tick and returns
// the remaining count (spec §4.E timer_tick).
func (k *Kernel) DecrementTimeSlice(tid ThreadID) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return 0, err
	}
	p.threads[slot].TimeSlice--
	return p.threads[slot].TimeSlice, nil
}

// ContextPtr returns a pointer to tid's architecture context block, stable
// for the lifetime of the thread, so arch.SwitchContext can save/restore
// it in place.
func (k *Kernel) ContextPtr(tid ThreadID) (*Context, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return nil, err
	}
	return &p.threads[slot].Ctx, nil
}

// Priority returns tid's current scheduling priority.
func (k *Kernel) Priority(tid ThreadID) (Priority, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return 0, err
	}
	return p.threads[slot].Priority, nil
}

// State returns tid's current thread state.
func (k *Kernel) State(tid ThreadID) (ThreadState, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return 0, err
	}
	return p.threads[slot].State, nil
}

// MailboxOf returns tid's mailbox, used by the fastpath to drive
// send/receive without going through a full Thread snapshot.
func (k *Kernel) MailboxOf(tid ThreadID) (*ipc.Mailbox, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return nil, err
	}
	return p.threads[slot].Mailbox, nil
}

// CapsOf returns tid's capability table, used by the fastpath to resolve
// send capabilities.
func (k *Kernel) CapsOf(tid ThreadID) (*capability.Table, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return nil, err
	}
	return p.threads[slot].Caps, nil
}
