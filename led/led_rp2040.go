//go:build tinygo

package led

import "machine"

// RP2040LED drives the activity LED on GPIO25 (§6) on the real target.
type RP2040LED struct {
	pin machine.Pin
	on  bool
}

func NewRP2040LED(pin machine.Pin) *RP2040LED {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.High()
	return &RP2040LED{pin: pin, on: true}
}

func (l *RP2040LED) Toggle() {
	l.on = !l.on
	l.pin.Set(l.on)
}
