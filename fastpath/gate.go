// Package fastpath implements the hot-path send gate (spec §4.F): a thin
// composition of the capability substrate, the IPC engine, and the
// scheduler for "send on a capability", plus the page-fault pager hook.
//
// Grounded on the teacher's thin-composition-facade style in
// pkg/hive/factory.go (small functions that just sequence calls into
// lower packages, documented with the exact step numbers the contract
// gives); reimplemented here against capability.Table, ipc.Mailbox, and
// sched.Scheduler instead of hivekit's registry types.
package fastpath

import (
	"errors"

	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/ipc"
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/arizkami/aurora-kernel-sub000/sched"
)

// Status is the outcome of a Send call (spec §4.F).
type Status int

const (
	Ok Status = iota
	Pending
	AccessDenied
	NotInitialized
	NotImplemented
)

func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Pending:
		return "pending"
	case AccessDenied:
		return "access_denied"
	case NotInitialized:
		return "not_initialized"
	case NotImplemented:
		return "not_implemented"
	default:
		return "unknown"
	}
}

var ErrNotInitialized = errors.New("fastpath: sender capability table not initialized")

// Gate composes the capability, IPC, and scheduler packages behind the
// single entry point spec §4.F describes.
type Gate struct {
	k     *kernel.Kernel
	sched *sched.Scheduler
	pager PageFaultHandler
}

// PageFaultHandler is the pager hook of spec §4.F step 4. It is registered
// at most once; Send never calls it, only HandlePageFault does.
type PageFaultHandler func(tid kernel.ThreadID, address uint64, flags uint32) Status

// New builds a Gate over k and sched. No pager hook is registered yet.
func New(k *kernel.Kernel, s *sched.Scheduler) *Gate {
	return &Gate{k: k, sched: s}
}

// RegisterPager installs the page-fault handler (spec: "registered once").
func (g *Gate) RegisterPager(h PageFaultHandler) {
	g.pager = h
}

// HandlePageFault dispatches to the registered pager, or reports
// NotImplemented if none has been installed (spec §4.F step 4).
func (g *Gate) HandlePageFault(tid kernel.ThreadID, address uint64, flags uint32) Status {
	if g.pager == nil {
		return NotImplemented
	}
	return g.pager(tid, address, flags)
}

// Send is the hot path "send on a capability" (spec §4.F):
//  1. Resolve the sender's capability table; NotInitialized if absent.
//  2. lookup(table, cap, SEND); AccessDenied if it misses.
//  3. Attempt send(sender, dest, msg). Ok returns Ok. MailboxFull enqueues
//     the sender on the destination's blocked-sender FIFO, transitions the
//     sender to waiting, and returns Pending.
func (g *Gate) Send(sender kernel.ThreadID, cap capability.Cap, msg ipc.Message) Status {
	table, err := g.k.CapsOf(sender)
	if err != nil || table == nil {
		return NotInitialized
	}

	obj, ok := table.Lookup(cap, capability.Send)
	if !ok {
		return AccessDenied
	}
	dest, ok := obj.(*ipc.Mailbox)
	if !ok || dest == nil {
		return AccessDenied
	}

	err = ipc.Send(ipc.SenderID(sender), dest, msg)
	if err == nil {
		return Ok
	}
	if errors.Is(err, ipc.ErrMailboxFull) {
		_ = g.k.SetThreadState(sender, kernel.ThreadWaiting)
		return Pending
	}
	return AccessDenied
}

// Receive drains the calling thread's own mailbox and wakes one blocked
// sender via the scheduler (spec §4.C post_receive wired through the
// fastpath so callers never touch ipc/sched directly).
func (g *Gate) Receive(receiver kernel.ThreadID) (ipc.Message, error) {
	mb, err := g.k.MailboxOf(receiver)
	if err != nil || mb == nil {
		return ipc.Message{}, ErrNotInitialized
	}
	return ipc.Receive(mb, g.sched)
}
