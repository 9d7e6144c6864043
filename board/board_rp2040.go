//go:build tinygo

package board

import (
	"io"
	"machine"

	"github.com/jonboulle/clockwork"

	"dccbridge.dev/dcc"
	"dccbridge.dev/led"
)

// rp2040Board is the real-target backend (§6, §10): GPIO14/15 drive the
// DCC pins, GPIO25 the activity LED, and the USB CDC serial port
// (machine.Serial) is the host stream.
type rp2040Board struct {
	pins  *dcc.RP2040Pins
	clock clockwork.Clock
	led   *led.RP2040LED
}

func NewRP2040Board() Board {
	machine.Serial.Configure(machine.UARTConfig{})
	return &rp2040Board{
		pins:  dcc.NewRP2040Pins(machine.GPIO14, machine.GPIO15),
		clock: clockwork.NewRealClock(),
		led:   led.NewRP2040LED(machine.GPIO25),
	}
}

func (b *rp2040Board) Pins() dcc.Pins            { return b.pins }
func (b *rp2040Board) Clock() dcc.Clock          { return b.clock }
func (b *rp2040Board) ActivityLED() led.LED      { return b.led }
func (b *rp2040Board) HostStream() io.ReadWriter { return machine.Serial }
