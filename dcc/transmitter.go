// Package dcc implements the DCC packet transmitter (component C):
// a bit-banged signal generator that drives two antiphase GPIO pins
// with the NMRA S-9.1 timing in §4.4.
package dcc

import (
	"time"
)

// Half-period durations for a DCC bit cell (§4.4, §6).
const (
	OneHalfPeriod  = 58 * time.Microsecond
	ZeroHalfPeriod = 116 * time.Microsecond
)

// PreambleBits is the number of leading '1' bits sent before every
// packet (§4.4). The NMRA minimum is 10; this implementation uses 14.
const PreambleBits = 14

// Idle packet contents (§4.3, §6): kept here too so callers that only
// import dcc (not command) can still emit idle packets.
const (
	IdleAddress     = 0xFF
	IdleInstruction = 0x00
)

// Pins is the two-GPIO antiphase driver C exclusively owns. Toggle
// inverts both MINUS and PLUS simultaneously; a DCC bit cell is always
// exactly two toggles (P2).
type Pins interface {
	Toggle()
}

// Clock is the minimal timing dependency of the bit-bang loop: a
// blocking hold of d. It is deliberately narrow so that
// clockwork.Clock (github.com/jonboulle/clockwork) satisfies it
// structurally — production code constructs clockwork.NewRealClock()
// — without tying tests to clockwork's FakeClock, whose
// BlockUntil/Advance synchronization is built for background timer
// workloads rather than a single synchronous busy-wait loop.
type Clock interface {
	Sleep(d time.Duration)
}

// Transmitter emits syntactically valid DCC packets per §4.4. It owns
// Pins exclusively and is the only component that may call Toggle.
type Transmitter struct {
	pins  Pins
	clock Clock
}

// New builds a Transmitter over pins, using clock for the busy-wait
// holds between toggles.
func New(pins Pins, clock Clock) *Transmitter {
	return &Transmitter{pins: pins, clock: clock}
}

// SendCommand emits one DCC packet addressed to address carrying
// instruction, and returns only after the final bit is on the wire
// (§4.4). The packet is: 14 preamble ones, a start bit, the address
// byte MSB-first, a start bit, the instruction byte MSB-first, a start
// bit, the XOR parity byte MSB-first, and an end bit — 42 bit cells
// total (P1).
func (t *Transmitter) SendCommand(address, instruction byte) {
	for i := 0; i < PreambleBits; i++ {
		t.sendBit(true)
	}
	t.sendBit(false)
	t.sendByte(address)
	t.sendBit(false)
	t.sendByte(instruction)
	t.sendBit(false)
	t.sendByte(address ^ instruction)
	t.sendBit(true)
}

// SendIdle emits the idle packet (§4.3, §6) used to keep track power
// energized between application commands.
func (t *Transmitter) SendIdle() {
	t.SendCommand(IdleAddress, IdleInstruction)
}

func (t *Transmitter) sendByte(b byte) {
	for i := 7; i >= 0; i-- {
		t.sendBit(b&(1<<uint(i)) != 0)
	}
}

func (t *Transmitter) sendBit(one bool) {
	half := ZeroHalfPeriod
	if one {
		half = OneHalfPeriod
	}
	t.pins.Toggle()
	t.clock.Sleep(half)
	t.pins.Toggle()
	t.clock.Sleep(half)
}
