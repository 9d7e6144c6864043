// Package dispatch implements the command dispatcher (component B, §4.2):
// a non-blocking mailbox poll invoked once per outer-loop iteration on the
// primary core, translating handshake and control messages into host
// responses and DCC packets.
package dispatch

import (
	"io"
	"log/slog"

	"dccbridge.dev/command"
	"dccbridge.dev/mailbox"
	"dccbridge.dev/protocol"
)

// Transmitter is the subset of dcc.Transmitter the dispatcher drives.
type Transmitter interface {
	SendCommand(address, instruction byte)
}

// Dispatcher owns the mailbox's consumer half, the host output stream, and
// the DCC transmitter — and nothing else (§5).
type Dispatcher struct {
	receiver mailbox.Receiver
	host     io.Writer
	tx       Transmitter
	log      *slog.Logger
}

func New(receiver mailbox.Receiver, host io.Writer, tx Transmitter, log *slog.Logger) *Dispatcher {
	return &Dispatcher{receiver: receiver, host: host, tx: tx, log: log}
}

// Dispatch performs one non-blocking poll of the mailbox. If it is empty, it
// returns immediately (§4.2); the outer loop calls this once per idle-packet
// iteration.
func (d *Dispatcher) Dispatch() {
	msg, ok := d.receiver.TryReceive()
	if !ok {
		return
	}
	switch content := msg.Content.(type) {
	case protocol.Handshake:
		d.dispatchHandshake(content)
	case protocol.ControlPacket:
		d.dispatchControlPacket(content)
	default:
		// Unrecognized variant: no-op (§4.2).
	}
}

func (d *Dispatcher) dispatchHandshake(hs protocol.Handshake) {
	if hs.Type != protocol.HandshakeRequest {
		return
	}
	reply := protocol.Message{Content: protocol.Handshake{Type: protocol.HandshakeResponse}}
	payload, err := protocol.Encode(reply)
	if err != nil {
		d.logDebug("dropping handshake response: encode failed", "error", err)
		return
	}
	if err := protocol.WriteFrame(d.host, payload); err != nil {
		d.logDebug("dropping handshake response: write failed", "error", err)
		return
	}
}

func (d *Dispatcher) dispatchControlPacket(cp protocol.ControlPacket) {
	instruction, err := command.ToInstruction(cp.Command)
	if err != nil {
		d.logDebug("dropping control packet: unrecognized command", "error", err)
		return
	}
	repeats := command.Repeats(cp.Command)
	for i := 0; i < repeats; i++ {
		d.tx.SendCommand(cp.Address, instruction)
	}
}

func (d *Dispatcher) logDebug(msg string, args ...any) {
	if d.log != nil {
		d.log.Debug(msg, args...)
	}
}
