//go:build periph

package board

import (
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"

	"dccbridge.dev/dcc"
	"dccbridge.dev/led"
)

// periphBoard is the Linux bench-rig backend (§6, §10): real GPIO14,
// GPIO15, and GPIO25 driven through periph.io, with the host stream
// wired to stdin/stdout — grounded in driver/wshat's host.Init/bcm283x
// pattern.
type periphBoard struct {
	pins   *dcc.PeriphPins
	clock  clockwork.Clock
	led    *led.PeriphLED
	stream io.ReadWriter
}

type stdStream struct {
	io.Reader
	io.Writer
}

// NewPeriphBoard initializes periph.io's host drivers and configures
// GPIO14/15 (DCC MINUS/PLUS) and GPIO25 (activity LED) per §6.
func NewPeriphBoard() (Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("board: periph host init: %w", err)
	}
	pins, err := dcc.NewPeriphPins(bcm283x.GPIO14, bcm283x.GPIO15)
	if err != nil {
		return nil, fmt.Errorf("board: configure DCC pins: %w", err)
	}
	activityLED, err := led.NewPeriphLED(bcm283x.GPIO25)
	if err != nil {
		return nil, fmt.Errorf("board: configure activity LED: %w", err)
	}
	return &periphBoard{
		pins:   pins,
		clock:  clockwork.NewRealClock(),
		led:    activityLED,
		stream: stdStream{Reader: os.Stdin, Writer: os.Stdout},
	}, nil
}

func (b *periphBoard) Pins() dcc.Pins            { return b.pins }
func (b *periphBoard) Clock() dcc.Clock          { return b.clock }
func (b *periphBoard) ActivityLED() led.LED      { return b.led }
func (b *periphBoard) HostStream() io.ReadWriter { return b.stream }
