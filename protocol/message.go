// Package protocol defines the host↔device message schema: the decoded
// form of the framed records exchanged over the serial/USB link, and
// their CBOR wire encoding.
package protocol

// Content is the payload of a Message. It is implemented by exactly
// Handshake and ControlPacket; a type switch over Content is expected
// to be exhaustive.
type Content interface {
	isContent()
}

// HandshakeType distinguishes a liveness probe from its reply.
type HandshakeType uint8

const (
	HandshakeRequest HandshakeType = iota
	HandshakeResponse
)

// Handshake is sent by the host to probe the device and by the device
// to answer.
type Handshake struct {
	Type HandshakeType
}

func (Handshake) isContent() {}

// ControlPacket addresses a single decoder with one Command.
type ControlPacket struct {
	Address uint8
	Command Command
}

func (ControlPacket) isContent() {}

// Message is one decoded, framed record.
type Message struct {
	Content Content
}

// Command is the ControlPacket payload. Implemented by exactly Drive,
// Halt, EmergencyStop, and Light.
type Command interface {
	isCommand()
}

// Direction is the Drive command's direction bit.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// Drive commands the decoder to a speed step in a direction. Speed is
// 5 bits significant (0..31); higher bits are ignored by the mapping
// in package command.
type Drive struct {
	Direction Direction
	Speed     uint8
}

func (Drive) isCommand() {}

// Halt stops the decoder without cutting power.
type Halt struct{}

func (Halt) isCommand() {}

// EmergencyStop requests an immediate stop. The dispatcher sends the
// resulting DCC packet five times in succession (§4.2).
type EmergencyStop struct{}

func (EmergencyStop) isCommand() {}

// Light switches the decoder's function-0 output on or off.
type Light struct {
	On bool
}

func (Light) isCommand() {}
