package kernel

import "errors"

var (
	// ErrNoProcessSlot indicates the fixed process table has no free entry.
	ErrNoProcessSlot = errors.New("kernel: no free process slot")
	// ErrNoThreadSlot indicates a process's fixed thread table has no free
	// entry.
	ErrNoThreadSlot = errors.New("kernel: no free thread slot")
	// ErrProcessNotFound indicates an id that does not name a live process.
	ErrProcessNotFound = errors.New("kernel: process not found")
	// ErrThreadNotFound indicates an id that does not name a live thread.
	ErrThreadNotFound = errors.New("kernel: thread not found")
)
