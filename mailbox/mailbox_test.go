package mailbox

import (
	"testing"

	"dccbridge.dev/protocol"
)

func TestFIFOOrderPreserved(t *testing.T) {
	m := New()
	sender := m.Sender()
	receiver := m.Receiver()

	var want []protocol.Message
	for i := uint8(0); i < Capacity; i++ {
		msg := protocol.Message{Content: protocol.ControlPacket{
			Address: i,
			Command: protocol.Halt{},
		}}
		want = append(want, msg)
		sender.Send(msg)
	}

	for i, w := range want {
		got, ok := receiver.TryReceive()
		if !ok {
			t.Fatalf("entry %d: mailbox unexpectedly empty", i)
		}
		cp, ok := got.Content.(protocol.ControlPacket)
		if !ok || cp.Address != w.Content.(protocol.ControlPacket).Address {
			t.Fatalf("entry %d: got %#v, want %#v", i, got, w)
		}
	}
	if _, ok := receiver.TryReceive(); ok {
		t.Fatal("mailbox yielded an extra, unsent entry")
	}
}

func TestTryReceiveEmptyIsNonBlocking(t *testing.T) {
	m := New()
	receiver := m.Receiver()
	if _, ok := receiver.TryReceive(); ok {
		t.Fatal("TryReceive on an empty mailbox reported an entry")
	}
}

func TestSendBlocksUntilSpace(t *testing.T) {
	m := New()
	sender := m.Sender()
	receiver := m.Receiver()
	for i := uint8(0); i < Capacity; i++ {
		sender.Send(protocol.Message{Content: protocol.ControlPacket{Address: i, Command: protocol.Halt{}}})
	}
	done := make(chan struct{})
	go func() {
		sender.Send(protocol.Message{Content: protocol.ControlPacket{Address: 99, Command: protocol.Halt{}}})
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Send on a full mailbox returned before space was freed")
	default:
	}
	if _, ok := receiver.TryReceive(); !ok {
		t.Fatal("expected a buffered entry to free space")
	}
	<-done
}
