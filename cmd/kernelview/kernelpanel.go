package main

import (
	"fmt"

	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/kernel"
	"github.com/arizkami/aurora-kernel-sub000/sched"
)

// kernelPanel holds a small demo kernel kernelview builds at startup so the
// "kernel" pane has something live to show: one process, two threads, a
// capability binding the first thread's send rights to the second's
// mailbox. It has no connection to the hive file being viewed — spec
// §4.D/§4.B's process/thread/capability model is entirely in-memory and
// carries no on-disk representation.
type kernelPanel struct {
	k    *kernel.Kernel
	s    *sched.Scheduler
	pid  kernel.ProcessID
	tids []kernel.ThreadID
}

func newKernelPanel() (*kernelPanel, error) {
	k := kernel.NewKernel(simArch{}, &simMem{})
	s := sched.New(k, simArch{})

	pid, err := k.CreateProcess("kernelview-demo", nil)
	if err != nil {
		return nil, err
	}

	var tids []kernel.ThreadID
	for i := 0; i < 2; i++ {
		tid, err := k.CreateThread(pid, 0, 0, kernel.PriorityNormal)
		if err != nil {
			return nil, err
		}
		if err := s.Start(tid); err != nil {
			return nil, err
		}
		tids = append(tids, tid)
	}

	senderCaps, err := k.CapsOf(tids[0])
	if err != nil {
		return nil, err
	}
	mb, err := k.MailboxOf(tids[1])
	if err != nil {
		return nil, err
	}
	if _, err := senderCaps.Insert(1, capability.Send, mb); err != nil {
		return nil, err
	}

	return &kernelPanel{k: k, s: s, pid: pid, tids: tids}, nil
}

// rows renders one line per thread plus one per ready-queue priority,
// enough for the pane to show both the thread table and scheduler state
// spec §3/§4.E describe.
func (kp *kernelPanel) rows() []string {
	var lines []string
	lines = append(lines, fmt.Sprintf("process %d", kp.pid))
	for _, tid := range kp.tids {
		state, _ := kp.k.State(tid)
		prio, _ := kp.k.Priority(tid)
		caps, _ := kp.k.CapsOf(tid)
		n := 0
		if caps != nil {
			for c := capability.Cap(0); c < capability.NumSlots; c++ {
				if _, ok := caps.Rights(c); ok {
					n++
				}
			}
		}
		lines = append(lines, fmt.Sprintf("  thread %d state=%s priority=%d caps=%d", tid, state, prio, n))
	}
	for prio := kernel.PriorityIdle; prio <= kernel.PriorityRealtime; prio++ {
		lines = append(lines, fmt.Sprintf("  ready[%d]=%d", prio, kp.s.ReadyLen(prio)))
	}
	return lines
}
