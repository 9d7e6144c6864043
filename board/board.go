// Package board owns the GPIO and stream resources named in §6 and
// hands them out by exclusive ownership at boot: pins and clock to the
// DCC transmitter, the host stream to the receiver and dispatcher, the
// activity LED to the receiver (§9). Three interchangeable backends
// exist (tinygo, periph, and the default software simulation); exactly
// one compiles into any given build, selected by build tag.
package board

import (
	"io"

	"dccbridge.dev/dcc"
	"dccbridge.dev/led"
)

// Board is the set of resources a backend hands to cmd/firmware at
// boot. HostStream returns the device's serial/USB transport as a
// combined reader/writer, since the receiver and dispatcher share the
// same physical link in opposite directions.
type Board interface {
	Pins() dcc.Pins
	Clock() dcc.Clock
	ActivityLED() led.LED
	HostStream() io.ReadWriter
}
