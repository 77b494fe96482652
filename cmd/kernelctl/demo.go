package main

import (
	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/fastpath"
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/arizkami/aurora-kernel-sub000/sched"
)

// simArch and simMem are minimal Arch/Mem collaborators (spec §6) good
// enough to drive the kernel in memory, with no real register file or
// page tables behind them. kernelctl never persists kernel/thread/scheduler
// state to disk, so unlike the hive commands above, the kernel demo
// commands need no on-disk format at all.
type simArch struct{}

func (simArch) InitThreadContext(entry, arg uintptr, stack []byte) kernel.Context {
	return kernel.Context{Opaque: stack[:0]}
}
func (simArch) SwitchContext(old, new *kernel.Context)    {}
func (simArch) SwitchAddressSpace(as kernel.AddressSpace) {}
func (simArch) Halt()                                     {}

type simMem struct{ next uint64 }

func (m *simMem) AllocPages(n int) (kernel.AddressSpace, error) {
	m.next++
	return kernel.AddressSpace{Opaque: m.next}, nil
}
func (m *simMem) FreePages(as kernel.AddressSpace) error { return nil }
func (m *simMem) Alloc(size int) ([]byte, error)         { return make([]byte, size), nil }
func (m *simMem) Free(buf []byte)                        {}

const simMailboxCapType uint32 = 2

// demoKernel bundles the in-process kernel simulation shared by sim, caps,
// threads, and ready-queue: one process, two threads (sender, receiver),
// and a Send capability from the sender to the receiver's mailbox. It
// exists so the introspection subcommands and `sim` attach to the same
// constructed state instead of each hand-rolling it (spec §6.3).
type demoKernel struct {
	k        *kernel.Kernel
	s        *sched.Scheduler
	gate     *fastpath.Gate
	pid      kernel.ProcessID
	sender   kernel.ThreadID
	receiver kernel.ThreadID
	sendCap  capability.Cap
}

func newDemoKernel() (*demoKernel, error) {
	k := kernel.NewKernel(simArch{}, &simMem{})
	s := sched.New(k, simArch{})
	gate := fastpath.New(k, s)

	pid, err := k.CreateProcess("sim", nil)
	if err != nil {
		return nil, err
	}
	sender, err := k.CreateThread(pid, 0, 0, kernel.PriorityNormal)
	if err != nil {
		return nil, err
	}
	receiver, err := k.CreateThread(pid, 0, 0, kernel.PriorityNormal)
	if err != nil {
		return nil, err
	}
	if err := s.Start(sender); err != nil {
		return nil, err
	}
	if err := s.Start(receiver); err != nil {
		return nil, err
	}

	senderCaps, err := k.CapsOf(sender)
	if err != nil {
		return nil, err
	}
	receiverMailbox, err := k.MailboxOf(receiver)
	if err != nil {
		return nil, err
	}
	sendCap, err := senderCaps.Insert(simMailboxCapType, capability.Send, receiverMailbox)
	if err != nil {
		return nil, err
	}

	return &demoKernel{
		k: k, s: s, gate: gate,
		pid: pid, sender: sender, receiver: receiver, sendCap: sendCap,
	}, nil
}

// threadIDs returns every thread seeded into the demo kernel, in creation
// order, for the caps/threads introspection commands to iterate over.
func (dk *demoKernel) threadIDs() []kernel.ThreadID {
	return []kernel.ThreadID{dk.sender, dk.receiver}
}
