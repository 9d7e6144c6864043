// Package command translates high-level ControlPacket commands into
// the DCC instruction bytes defined in §4.3.
package command

import (
	"fmt"

	"dccbridge.dev/protocol"
)

// Instruction bytes for the fixed (non-Drive) commands.
const (
	Halt          = 0b0110_0000 // 0x60
	EmergencyStop = 0b0110_0001 // 0x61
	LightsOn      = 0b1001_0000 // 0x90
	LightsOff     = 0b1000_0000 // 0x80
)

// Idle packet contents, used by the outer loop between commands.
const (
	IdleAddress     = 0xFF
	IdleInstruction = 0x00
)

const driveFamily = 0b0100_0000 // 0x40
const driveDirectionBit = 1 << 5

// ToInstruction computes the DCC instruction byte for cmd per §4.3. It
// covers the four Command variants and returns an error for any other
// implementation of protocol.Command; the dispatcher passes every
// Command here and treats that error as the §4.2 "unrecognized
// variant: no-op".
func ToInstruction(cmd protocol.Command) (byte, error) {
	switch c := cmd.(type) {
	case protocol.Drive:
		speed := c.Speed & 0x1F
		instr := byte(driveFamily) | speed
		if c.Direction == protocol.Forward {
			instr |= driveDirectionBit
		}
		return instr, nil
	case protocol.Halt:
		return Halt, nil
	case protocol.EmergencyStop:
		return EmergencyStop, nil
	case protocol.Light:
		if c.On {
			return LightsOn, nil
		}
		return LightsOff, nil
	default:
		return 0, fmt.Errorf("command: unrecognized command variant %T", cmd)
	}
}

// Repeats is the number of times the dispatcher must invoke
// dcc.Transmitter.SendCommand for cmd (§4.2): five for EmergencyStop,
// one for everything else.
func Repeats(cmd protocol.Command) int {
	if _, ok := cmd.(protocol.EmergencyStop); ok {
		return 5
	}
	return 1
}
