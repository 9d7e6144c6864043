//go:build tinygo

package dcc

import "machine"

// RP2040Pins drives the real MINUS/PLUS GPIOs (§6) on the TinyGo/RP2040
// target. Board bring-up (clock init, pin mode configuration) beyond
// what Configure does here is out of scope (§1) and assumed already
// done by the platform.
type RP2040Pins struct {
	minus, plus machine.Pin
	state       bool // current logical level of minus; plus is always !state
}

// NewRP2040Pins configures minus and plus for output and drives them
// to the DCC idle state (MINUS=0, PLUS=1).
func NewRP2040Pins(minus, plus machine.Pin) *RP2040Pins {
	minus.Configure(machine.PinConfig{Mode: machine.PinOutput})
	plus.Configure(machine.PinConfig{Mode: machine.PinOutput})
	minus.Low()
	plus.High()
	return &RP2040Pins{minus: minus, plus: plus, state: false}
}

// Toggle inverts both MINUS and PLUS simultaneously.
func (p *RP2040Pins) Toggle() {
	p.state = !p.state
	if p.state {
		p.minus.High()
		p.plus.Low()
	} else {
		p.minus.Low()
		p.plus.High()
	}
}
