package ipc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendReceiveRoundTrip(t *testing.T) {
	mb := NewMailbox()
	msg, err := NewMessage(1, 2, 3)
	require.NoError(t, err)

	require.NoError(t, Send(SenderID(1), mb, msg))

	got, err := Receive(mb, nil)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
	assert.True(t, mb.Empty())
}

func TestReceiveOnEmptyMailbox(t *testing.T) {
	mb := NewMailbox()
	_, err := Receive(mb, nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSendToFullMailboxBlocksSender(t *testing.T) {
	mb := NewMailbox()
	msg, _ := NewMessage(42)
	require.NoError(t, Send(SenderID(1), mb, msg))

	err := Send(SenderID(2), mb, msg)
	assert.ErrorIs(t, err, ErrMailboxFull)

	head, ok := mb.BlockedHead()
	require.True(t, ok)
	assert.Equal(t, SenderID(2), head)
	assert.Equal(t, 1, mb.BlockedLen())
}

type fakeReadier struct {
	readied []SenderID
}

func (f *fakeReadier) MarkReady(id SenderID) { f.readied = append(f.readied, id) }

func TestReceiveWakesOneBlockedSenderInFIFOOrder(t *testing.T) {
	mb := NewMailbox()
	msg, _ := NewMessage(1)
	require.NoError(t, Send(SenderID(1), mb, msg))

	require.ErrorIs(t, Send(SenderID(2), mb, msg), ErrMailboxFull)
	require.ErrorIs(t, Send(SenderID(3), mb, msg), ErrMailboxFull)

	r := &fakeReadier{}
	_, err := Receive(mb, r)
	require.NoError(t, err)

	require.Len(t, r.readied, 1)
	assert.Equal(t, SenderID(2), r.readied[0])
	assert.Equal(t, 1, mb.BlockedLen())

	head, ok := mb.BlockedHead()
	require.True(t, ok)
	assert.Equal(t, SenderID(3), head)
}

func TestRemoveBlockedSenderCancelsWait(t *testing.T) {
	mb := NewMailbox()
	msg, _ := NewMessage(1)
	require.NoError(t, Send(SenderID(1), mb, msg))
	require.ErrorIs(t, Send(SenderID(2), mb, msg), ErrMailboxFull)

	assert.True(t, mb.Remove(SenderID(2)))
	assert.Equal(t, 0, mb.BlockedLen())
	assert.False(t, mb.Remove(SenderID(2)))
}

func TestNewMessageRejectsTooManyRegisters(t *testing.T) {
	_, err := NewMessage(1, 2, 3, 4, 5)
	assert.ErrorIs(t, err, ErrBadLength)
}

func TestSendRejectsOutOfRangeLength(t *testing.T) {
	mb := NewMailbox()
	err := mb.Send(Message{Len: MaxRegisters + 1})
	assert.ErrorIs(t, err, ErrBadLength)
}
