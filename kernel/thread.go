package kernel

import (
	"github.com/arizkami/aurora-kernel-sub000/capability"
	"github.com/arizkami/aurora-kernel-sub000/ipc"
)

// CreateThread allocates a 16 KiB kernel stack, asks the arch collaborator
// to build a context that begins at entry(arg), links the thread at the
// head of the process's thread list, and gives it a fresh capability table
// seeded with a self-capability holding send|recv rights (spec §4.D:
// create_thread). The new thread starts in state initialized.
func (k *Kernel) CreateThread(pid ProcessID, entry, arg uintptr, priority Priority) (ThreadID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	p, err := k.lookupProcess(pid)
	if err != nil {
		return 0, err
	}

	slot := -1
	for i := range p.threads {
		if !p.threads[i].occupied {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, ErrNoThreadSlot
	}

	stack, err := k.mem.Alloc(KernelStackBytes)
	if err != nil {
		return 0, err
	}
	ctx := k.arch.InitThreadContext(entry, arg, stack)

	k.nextTID++
	tid := k.nextTID

	caps := capability.NewTable()

	t := &p.threads[slot]
	*t = Thread{
		ID:        tid,
		ProcessID: pid,
		State:     ThreadInitialized,
		Priority:  priority,
		Stack:     stack,
		Ctx:       ctx,
		Caps:      caps,
		Mailbox:   nil, // assigned below, after the slot's zero value is set
		prev:      -1,
		next:      p.threadHead,
		occupied:  true,
	}
	mb := ipc.NewMailbox()
	t.Mailbox = mb
	if _, err := caps.Insert(selfCapType, capability.Send|capability.Recv, mb); err != nil {
		return 0, err
	}

	if p.threadHead != -1 {
		p.threads[p.threadHead].prev = slot
	}
	p.threadHead = slot
	if p.mainThread == -1 {
		p.mainThread = slot
	}

	return tid, nil
}

// selfCapType tags a thread's self-capability entry (spec §4.D: "inserts a
// self-capability with send|recv rights"); any nonzero value works since
// capability.Table never interprets object types beyond "occupied".
const selfCapType uint32 = 1

// threadSlot finds (process, slot) for tid, assuming k.mu is held.
func (k *Kernel) threadSlot(tid ThreadID) (*Process, int, error) {
	for i := range k.processes {
		p := &k.processes[i]
		if !p.occupied {
			continue
		}
		for s := range p.threads {
			if p.threads[s].occupied && p.threads[s].ID == tid {
				return p, s, nil
			}
		}
	}
	return nil, -1, ErrThreadNotFound
}

// Thread returns a snapshot copy of the thread record for tid.
func (k *Kernel) Thread(tid ThreadID) (Thread, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, slot, err := k.threadSlot(tid)
	if err != nil {
		return Thread{}, err
	}
	p, _, _ := k.threadSlot(tid)
	return p.threads[slot], nil
}

// TerminateThread sets state terminated and releases the thread's kernel
// stack and capability table (spec §4.D: terminate_thread). It does not
// reschedule; the scheduler observes the state change on its next pass.
func (k *Kernel) TerminateThread(tid ThreadID, exitCode int) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, slot, err := k.threadSlot(tid)
	if err != nil {
		return err
	}
	k.terminateThreadLocked(p, slot, exitCode)
	return nil
}

func (k *Kernel) terminateThreadLocked(p *Process, slot int, exitCode int) {
	t := &p.threads[slot]
	if t.State == ThreadTerminated {
		return
	}
	t.State = ThreadTerminated
	if t.Stack != nil {
		k.mem.Free(t.Stack)
		t.Stack = nil
	}
	if t.Caps != nil {
		t.Caps.Destroy()
		t.Caps = nil
	}
}
