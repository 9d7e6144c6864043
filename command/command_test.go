package command

import (
	"testing"

	"dccbridge.dev/protocol"
)

func TestToInstructionScenarios(t *testing.T) {
	cases := []struct {
		name string
		cmd  protocol.Command
		want byte
	}{
		{"forward 15", protocol.Drive{Direction: protocol.Forward, Speed: 15}, 0x6F},
		{"backward 15", protocol.Drive{Direction: protocol.Backward, Speed: 15}, 0x4F},
		{"halt", protocol.Halt{}, 0x60},
		{"emergency stop", protocol.EmergencyStop{}, 0x61},
		{"lights on", protocol.Light{On: true}, 0x90},
		{"lights off", protocol.Light{On: false}, 0x80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToInstruction(c.cmd)
			if err != nil {
				t.Fatalf("ToInstruction: %v", err)
			}
			if got != c.want {
				t.Fatalf("ToInstruction(%#v) = %#x, want %#x", c.cmd, got, c.want)
			}
		})
	}
}

// TestDriveBijection checks P4: the drive mapping is a bijection on
// (direction, speed) into {0x40..0x7F}.
func TestDriveBijection(t *testing.T) {
	seen := make(map[byte]bool)
	for _, dir := range []protocol.Direction{protocol.Forward, protocol.Backward} {
		for speed := 0; speed < 32; speed++ {
			instr, err := ToInstruction(protocol.Drive{Direction: dir, Speed: uint8(speed)})
			if err != nil {
				t.Fatalf("ToInstruction: %v", err)
			}
			if instr < 0x40 || instr > 0x7F {
				t.Fatalf("instruction %#x out of range [0x40,0x7F]", instr)
			}
			if seen[instr] {
				t.Fatalf("instruction %#x produced by more than one (direction, speed) pair", instr)
			}
			seen[instr] = true
		}
	}
	if len(seen) != 64 {
		t.Fatalf("mapping covers %d of 64 instruction values", len(seen))
	}
}

func TestSpeedHighBitsIgnored(t *testing.T) {
	a, err := ToInstruction(protocol.Drive{Direction: protocol.Forward, Speed: 15})
	if err != nil {
		t.Fatalf("ToInstruction: %v", err)
	}
	b, err := ToInstruction(protocol.Drive{Direction: protocol.Forward, Speed: 15 | 0xE0})
	if err != nil {
		t.Fatalf("ToInstruction: %v", err)
	}
	if a != b {
		t.Fatalf("high bits of Speed leaked into the instruction: %#x vs %#x", a, b)
	}
}

func TestRepeats(t *testing.T) {
	if got := Repeats(protocol.EmergencyStop{}); got != 5 {
		t.Fatalf("Repeats(EmergencyStop) = %d, want 5", got)
	}
	for _, cmd := range []protocol.Command{
		protocol.Drive{Direction: protocol.Forward, Speed: 1},
		protocol.Halt{},
		protocol.Light{On: true},
	} {
		if got := Repeats(cmd); got != 1 {
			t.Fatalf("Repeats(%#v) = %d, want 1", cmd, got)
		}
	}
}
