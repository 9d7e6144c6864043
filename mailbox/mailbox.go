// Package mailbox implements the bounded single-producer/single-consumer
// FIFO between the host-link receiver and the command dispatcher (§4.5).
package mailbox

import "dccbridge.dev/protocol"

// Capacity is the mailbox's fixed entry count (§3).
const Capacity = 10

// Mailbox is a bounded, fixed-capacity FIFO of decoded messages. A
// buffered channel already gives single-producer/single-consumer,
// FIFO, blocking-send/non-blocking-receive semantics, so no separate
// lock or ring buffer is needed (§5: "no mutexes are required by
// design").
type Mailbox struct {
	ch chan protocol.Message
}

// New creates a mailbox with the fixed capacity specified in §3. It is
// created once at boot and lives for the process lifetime.
func New() *Mailbox {
	return &Mailbox{ch: make(chan protocol.Message, Capacity)}
}

// Sender returns the producer half, owned exclusively by the
// host-link receiver (component A).
func (m *Mailbox) Sender() Sender {
	return Sender{ch: m.ch}
}

// Receiver returns the consumer half, owned exclusively by the
// command dispatcher (component B).
func (m *Mailbox) Receiver() Receiver {
	return Receiver{ch: m.ch}
}

// Sender is the mailbox's producer half.
type Sender struct {
	ch chan<- protocol.Message
}

// Send blocks until there is room for msg. A's sole suspension point
// besides the host read (§5).
func (s Sender) Send(msg protocol.Message) {
	s.ch <- msg
}

// Receiver is the mailbox's consumer half.
type Receiver struct {
	ch <-chan protocol.Message
}

// TryReceive performs a non-blocking poll. ok is false if the mailbox
// is currently empty.
func (r Receiver) TryReceive() (msg protocol.Message, ok bool) {
	select {
	case msg = <-r.ch:
		return msg, true
	default:
		return protocol.Message{}, false
	}
}
