//go:build periph

package dcc

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
)

// PeriphPins drives the MINUS/PLUS GPIOs (§6) from a host-class Linux
// board (e.g. a Raspberry Pi used as a bench rig) via periph.io,
// following the same gpio.PinIO.Out pattern as driver/wshat's button
// reader in the reference corpus, but for output instead of input.
type PeriphPins struct {
	minus, plus gpio.PinIO
	state       bool
}

// NewPeriphPins initializes the periph.io host driver registry and
// opens minus/plus for output, driven to the DCC idle state.
func NewPeriphPins(minus, plus gpio.PinIO) (*PeriphPins, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("dcc: periph host init: %w", err)
	}
	if err := minus.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("dcc: configure MINUS: %w", err)
	}
	if err := plus.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("dcc: configure PLUS: %w", err)
	}
	return &PeriphPins{minus: minus, plus: plus, state: false}, nil
}

// Toggle inverts both MINUS and PLUS simultaneously. Errors returned
// by the underlying driver are not expected in normal operation (the
// pins were already validated as outputs in NewPeriphPins) and are
// ignored here to preserve the Pins interface's signature, matching
// how the bit-bang loop in Transmitter cannot usefully recover from a
// GPIO write failure mid-packet.
func (p *PeriphPins) Toggle() {
	p.state = !p.state
	if p.state {
		p.minus.Out(gpio.High)
		p.plus.Out(gpio.Low)
	} else {
		p.minus.Out(gpio.Low)
		p.plus.Out(gpio.High)
	}
}
