//go:build !tinygo && !periph

package board

import (
	"io"

	"github.com/jonboulle/clockwork"

	"dccbridge.dev/dcc"
	"dccbridge.dev/led"
)

// simBoard is the software-simulation backend used by every test in
// this repository and by default builds (§6, §10): in-memory pin and
// LED state, and whatever host stream the caller passes to NewSimBoard.
type simBoard struct {
	pins   *dcc.SimPins
	clock  clockwork.Clock
	led    *led.SimLED
	stream io.ReadWriter
}

// NewSimBoard builds a simulation board. stream is the host link; a
// caller driving the board end-to-end typically wires one half of an
// io.Pipe here and drives the other half as the simulated host.
func NewSimBoard(stream io.ReadWriter) Board {
	return &simBoard{
		pins:   dcc.NewSimPins(),
		clock:  clockwork.NewRealClock(),
		led:    &led.SimLED{},
		stream: stream,
	}
}

func (b *simBoard) Pins() dcc.Pins            { return b.pins }
func (b *simBoard) Clock() dcc.Clock          { return b.clock }
func (b *simBoard) ActivityLED() led.LED      { return b.led }
func (b *simBoard) HostStream() io.ReadWriter { return b.stream }
