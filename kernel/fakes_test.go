package kernel

// fakeArch and fakeMem are minimal collaborator stand-ins for tests (spec
// §6 defines both as black-box interfaces; a real kernel wires in arch-
// specific and MM-specific implementations that this package never sees).

type fakeArch struct{}

func (fakeArch) InitThreadContext(entry, arg uintptr, stack []byte) Context {
	return Context{Opaque: make([]byte, 8)}
}
func (fakeArch) SwitchContext(old, new *Context) {}
func (fakeArch) SwitchAddressSpace(as AddressSpace) {}
func (fakeArch) Halt() {}

type fakeMem struct {
	nextHandle uint64
}

func (m *fakeMem) AllocPages(n int) (AddressSpace, error) {
	m.nextHandle++
	return AddressSpace{Opaque: m.nextHandle}, nil
}
func (m *fakeMem) FreePages(as AddressSpace) error { return nil }
func (m *fakeMem) Alloc(size int) ([]byte, error)  { return make([]byte, size), nil }
func (m *fakeMem) Free(buf []byte)                 {}

func newTestKernel() *Kernel {
	return NewKernel(fakeArch{}, &fakeMem{})
}
