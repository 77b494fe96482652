package ipc

// Readier marks a previously-blocked sender ready again. The fastpath
// (spec §4.F) supplies the concrete adapter onto the scheduler's ready
// queues; ipc itself has no notion of threads or scheduling.
type Readier interface {
	MarkReady(id SenderID)
}

// Send delivers msg to receiver (spec §4.C: send(sender, receiver, msg)).
// If the mailbox is full, sender is appended to receiver's blocked FIFO
// and ErrMailboxFull is returned; the caller (fastpath) is expected to
// then block sender in the scheduler.
func Send(sender SenderID, receiver *Mailbox, msg Message) error {
	err := receiver.Send(msg)
	if err == ErrMailboxFull {
		receiver.Enqueue(sender)
	}
	return err
}

// Receive drains receiver (spec §4.C: receive(receiver, out)). On success
// it also performs the post-receive step: one blocked sender, if any, is
// dequeued and handed to readier so the caller can ready it in the
// scheduler. readier may be nil, in which case the dequeued sender (if
// any) is simply dropped from the FIFO without being readied — callers
// that don't care about wakeup (e.g. tests exercising the mailbox alone)
// can pass nil.
func Receive(receiver *Mailbox, readier Readier) (Message, error) {
	msg, err := receiver.Receive()
	if err != nil {
		return msg, err
	}
	if id, ok := receiver.PostReceive(); ok && readier != nil {
		readier.MarkReady(id)
	}
	return msg, nil
}

// PostReceive dequeues one blocked sender from receiver's FIFO and hands
// it to readier, without touching the mailbox slot itself. Exposed
// separately from Receive for callers (e.g. repair/replay tooling) that
// need to drive the wakeup step on its own.
func PostReceive(receiver *Mailbox, readier Readier) {
	if id, ok := receiver.PostReceive(); ok && readier != nil {
		readier.MarkReady(id)
	}
}
