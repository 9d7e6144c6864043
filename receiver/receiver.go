// Package receiver implements the host-link receiver (component A,
// §4.1): it reads framed messages from the host byte stream, decodes
// them, and enqueues them onto the mailbox. It runs on the auxiliary
// core and returns only if the host stream itself fails.
package receiver

import (
	"errors"
	"io"
	"log/slog"

	"dccbridge.dev/led"
	"dccbridge.dev/mailbox"
	"dccbridge.dev/protocol"
)

// Receiver owns the host input stream, the mailbox's producer half,
// and the activity LED — and nothing else (§5).
type Receiver struct {
	host   io.Reader
	sender mailbox.Sender
	led    led.LED
	log    *slog.Logger
	buf    [protocol.MaxMessageSize]byte
}

// New builds a Receiver. log may be nil, in which case events are not
// logged (logging is purely diagnostic, §7/§10, and never gates
// behavior).
func New(host io.Reader, sender mailbox.Sender, activityLED led.LED, log *slog.Logger) *Receiver {
	return &Receiver{host: host, sender: sender, led: activityLED, log: log}
}

// Run reads framed messages from the host stream until it is closed or
// errors, decoding and enqueueing each one in turn (§4.1). It returns
// only when the host stream itself fails — the production entry point
// runs it as the body of the auxiliary core's task, which never
// returns in normal operation.
func (r *Receiver) Run() error {
	for {
		if err := r.receiveOne(); err != nil {
			return err
		}
	}
}

// receiveOne reads and processes a single framed message. A return
// value of nil means one full frame was read, whether or not it was
// successfully decoded and enqueued (§4.1: decode failures are
// silently dropped). Only a failure of the underlying stream itself is
// returned.
func (r *Receiver) receiveOne() error {
	n, err := protocol.ReadFrame(r.host, r.buf[:])
	if err != nil {
		if errors.Is(err, protocol.ErrOversizeFrame) {
			r.logDebug("dropping oversize frame")
			return nil
		}
		return err
	}
	msg, err := protocol.Decode(r.buf[:n])
	if err != nil {
		r.logDebug("dropping frame that failed to decode", "error", err)
		return nil
	}
	r.sender.Send(msg)
	r.led.Toggle()
	return nil
}

func (r *Receiver) logDebug(msg string, args ...any) {
	if r.log != nil {
		r.log.Debug(msg, args...)
	}
}
