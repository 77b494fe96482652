package kernel

// CreateProcess zeroes a free process slot, assigns a monotonically
// increasing id, asks the memory collaborator for a fresh address space,
// and links it into the kernel's process table (spec §4.D: create_process).
// image is accepted for the caller's bookkeeping (the binary/resource the
// process was created from); this package does not interpret it.
func (k *Kernel) CreateProcess(name string, image []byte) (ProcessID, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	slot := -1
	for i := range k.processes {
		if !k.processes[i].occupied {
			slot = i
			break
		}
	}
	if slot < 0 {
		return 0, ErrNoProcessSlot
	}

	as, err := k.mem.AllocPages(1)
	if err != nil {
		return 0, err
	}

	k.nextPID++
	pid := k.nextPID

	p := &k.processes[slot]
	*p = Process{
		ID:           pid,
		Name:         name,
		State:        ProcessRunning,
		AddressSpace: as,
		ExitCode:     0,
		threadHead:   -1,
		mainThread:   -1,
		occupied:     true,
	}
	k.byID[pid] = slot
	return pid, nil
}

// lookupProcess returns the slot for pid, assuming k.mu is held.
func (k *Kernel) lookupProcess(pid ProcessID) (*Process, error) {
	slot, ok := k.byID[pid]
	if !ok || !k.processes[slot].occupied {
		return nil, ErrProcessNotFound
	}
	return &k.processes[slot], nil
}

// Process returns a snapshot copy of the process record for pid, or
// ErrProcessNotFound if it does not name a live process. The returned
// value's thread table is a copy and safe to inspect without the kernel
// lock.
func (k *Kernel) Process(pid ProcessID) (Process, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	p, err := k.lookupProcess(pid)
	if err != nil {
		return Process{}, err
	}
	return *p, nil
}

// TerminateProcess iterates the thread list terminating each thread, then
// marks the process terminated and releases its address space (spec §4.D:
// terminate_process). The parent's wait on exitCode is out of this
// package's scope — spec §4.D notes it is "implementation in the
// scheduler's wait machinery".
func (k *Kernel) TerminateProcess(pid ProcessID, exitCode int) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	p, err := k.lookupProcess(pid)
	if err != nil {
		return err
	}

	for slot := p.threadHead; slot != -1; {
		next := p.threads[slot].next
		k.terminateThreadLocked(p, slot, exitCode)
		slot = next
	}

	p.State = ProcessTerminated
	p.ExitCode = exitCode
	if p.AddressSpace != (AddressSpace{}) {
		_ = k.mem.FreePages(p.AddressSpace)
	}
	return nil
}
