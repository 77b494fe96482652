package main

import "github.com/arizkami/aurora-kernel-sub000/kernel"

// simArch and simMem mirror kernelctl's sim collaborators (spec §6):
// just enough of Arch/Mem to let newKernelPanel build a live kernel for
// the demo pane, with no real register file or page tables behind them.
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
