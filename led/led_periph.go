//go:build periph

package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// PeriphLED drives the activity LED via periph.io on a Linux bench
// rig, the same gpio.PinIO.Out pattern as dcc.PeriphPins.
type PeriphLED struct {
	pin gpio.PinIO
	on  bool
}

func NewPeriphLED(pin gpio.PinIO) (*PeriphLED, error) {
	if err := pin.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("led: configure: %w", err)
	}
	return &PeriphLED{pin: pin, on: true}, nil
}

func (l *PeriphLED) Toggle() {
	l.on = !l.on
	level := gpio.Low
	if l.on {
		level = gpio.High
	}
	l.pin.Out(level)
}
