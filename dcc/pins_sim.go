//go:build !tinygo && !periph

package dcc

// SimPins is the software-simulation Pins backend (§6, board backend
// matrix). It is the default when built with neither the "tinygo" nor
// the "periph" build tag, which is how every test in this repository
// exercises the transmitter.
type SimPins struct {
	// Minus and Plus track the current output level of each GPIO,
	// matching the real hardware's idle state (MINUS=0, PLUS=1).
	Minus, Plus bool
}

// NewSimPins returns pins in the DCC idle state (§4.4).
func NewSimPins() *SimPins {
	return &SimPins{Minus: false, Plus: true}
}

// Toggle inverts both outputs simultaneously.
func (p *SimPins) Toggle() {
	p.Minus = !p.Minus
	p.Plus = !p.Plus
}
