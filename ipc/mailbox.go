package ipc

import "sync"

// SenderID identifies a blocked sender in a Mailbox's FIFO. It is an
// opaque uint64, sized to match the kernel package's thread identity type
// without importing it (spec §2: IPC composes with thread identity only at
// the fastpath layer, which holds a kernel.ThreadID and converts it to a
// SenderID here); avoiding that import keeps capability/ipc free of any
// dependency on the process/thread tables.
type SenderID uint64

// blockedSender is one FIFO entry: who is waiting, not what they sent —
// spec §9 documents that the original message is not preserved across a
// block (an acknowledged defect candidate, not fixed in this design).
type blockedSender struct {
	id SenderID
}

// Mailbox is a single-slot message buffer plus a FIFO of senders blocked
// because the slot was full (spec §3).
type Mailbox struct {
	mu      sync.Mutex
	occupied bool
	msg     Message
	blocked []blockedSender
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{}
}

// Send copies msg into the mailbox if it is empty (spec §4.C). Returns
// ErrMailboxFull if the single slot is already occupied; callers (the
// fastpath, §4.F) are responsible for enqueuing the sender and blocking it
// in that case.
func (m *Mailbox) Send(msg Message) error {
	if msg.Len < 0 || msg.Len > MaxRegisters {
		return ErrBadLength
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.occupied {
		return ErrMailboxFull
	}
	m.msg = msg
	m.occupied = true
	return nil
}

// Receive drains the mailbox and returns the message it held, or ErrEmpty
// if it was already empty. On success it does not itself call PostReceive — callers
// do that explicitly, matching the spec's two-step contract.
func (m *Mailbox) Receive() (Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.occupied {
		return Message{}, ErrEmpty
	}
	msg := m.msg
	m.msg = Message{}
	m.occupied = false
	return msg, nil
}

// Empty reports whether the mailbox currently holds no message.
func (m *Mailbox) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.occupied
}

// Enqueue appends a blocked sender to the FIFO (spec §4.C: the fastpath
// calls this after Send returns ErrMailboxFull).
func (m *Mailbox) Enqueue(id SenderID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blocked = append(m.blocked, blockedSender{id: id})
}

// PostReceive dequeues one blocked sender (FIFO order) and returns it, or
// ok=false if the FIFO is empty (spec §4.C). The caller is responsible for
// readying that sender in the scheduler.
func (m *Mailbox) PostReceive() (id SenderID, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.blocked) == 0 {
		return 0, false
	}
	id = m.blocked[0].id
	m.blocked = m.blocked[1:]
	return id, true
}

// Remove drops id from the blocked FIFO if present (spec §5: cancellation
// of a blocked sender, e.g. because it was terminated, removes it from the
// destination's FIFO before the mailbox state is observed again). O(n)
// over the FIFO length, as the spec allows.
func (m *Mailbox) Remove(id SenderID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, b := range m.blocked {
		if b.id == id {
			m.blocked = append(m.blocked[:i], m.blocked[i+1:]...)
			return true
		}
	}
	return false
}

// BlockedLen reports how many senders are currently queued (used by tests
// and the TUI dashboard).
func (m *Mailbox) BlockedLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.blocked)
}

// BlockedHead reports the sender at the head of the FIFO without removing
// it (used by S4-style assertions: "it appears at the head of T_recv's
// blocked-sender FIFO").
func (m *Mailbox) BlockedHead() (SenderID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.blocked) == 0 {
		return 0, false
	}
	return m.blocked[0].id, true
}
