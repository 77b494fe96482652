// Package ipc implements the register-only message transfer engine (spec
// §3, §4.C): a single-slot mailbox per thread with a blocked-sender FIFO,
// non-blocking-first send/receive semantics, and the post-receive wakeup
// that drains one blocked sender.
//
// No teacher analogue exists for IPC specifically (hivekit has no message
// passing); the "one in-flight slot, explicit wait queue, wake exactly one
// waiter on drain" shape is grounded on hanwen-go-fuse's request dispatch
// loop, which serializes requests against a single in-flight operation per
// connection and threads a wait queue of blocked callers — reimplemented
// here for the spec's four-register value-copy semantics instead of FUSE's
// byte-buffer requests.
package ipc

import "errors"

// MaxRegisters is the fixed message register count (spec §3: "Exactly four
// 64-bit message registers").
const MaxRegisters = 4

var (
	// ErrMailboxFull indicates Send found a full mailbox (spec §4.C).
	ErrMailboxFull = errors.New("ipc: mailbox full")
	// ErrEmpty indicates Receive found an empty mailbox.
	ErrEmpty = errors.New("ipc: mailbox empty")
	// ErrBadLength indicates a message length outside [0, MaxRegisters].
	ErrBadLength = errors.New("ipc: message length out of range")
)

// Message is a value-copied, register-only IPC payload (spec §3: "Messages
// are value-copied end-to-end; no pointers crossing threads").
type Message struct {
	Regs [MaxRegisters]uint64
	Len  int // number of valid registers, in [0, MaxRegisters]
}

// NewMessage builds a Message from up to MaxRegisters register values.
func NewMessage(regs ...uint64) (Message, error) {
	if len(regs) > MaxRegisters {
		return Message{}, ErrBadLength
	}
	var m Message
	copy(m.Regs[:], regs)
	m.Len = len(regs)
	return m, nil
}
