package protocol

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// MaxMessageSize bounds the serialized size of any Message this schema
// can produce. A receiver buffer of this size is sufficient for every
// valid frame (§4.1).
const MaxMessageSize = 64

// ErrOversizeFrame is returned by ReadFrame when the announced length
// exceeds MaxMessageSize. The frame's bytes have already been drained
// from r so framing stays in sync; the caller should treat this the
// same as a decode failure and move on to the next frame.
var ErrOversizeFrame = errors.New("protocol: frame exceeds schema maximum")

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	encMode = em
	dm, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	decMode = dm
}

// Wire representation of Message/Content/Command, keyed by small
// integers rather than field names to keep the encoded form compact,
// mirroring the oneof-style schema the decoded types in message.go
// are modeled on.
const (
	whichHandshake = 0
	whichControl   = 1
)

const (
	whichDrive         = 0
	whichHalt          = 1
	whichEmergencyStop = 2
	whichLight         = 3
)

type wireMessage struct {
	Which     uint8              `cbor:"0,keyasint"`
	Handshake *wireHandshake     `cbor:"1,keyasint,omitempty"`
	Control   *wireControlPacket `cbor:"2,keyasint,omitempty"`
}

type wireHandshake struct {
	Type uint8 `cbor:"0,keyasint"`
}

type wireControlPacket struct {
	Address uint8          `cbor:"0,keyasint"`
	Which   uint8          `cbor:"1,keyasint"`
	Drive   *wireDrive     `cbor:"2,keyasint,omitempty"`
	Light   *wireLight     `cbor:"3,keyasint,omitempty"`
}

type wireDrive struct {
	Direction uint8 `cbor:"0,keyasint"`
	Speed     uint8 `cbor:"1,keyasint"`
}

type wireLight struct {
	On bool `cbor:"0,keyasint"`
}

// Encode serializes msg to its canonical CBOR wire form.
func Encode(msg Message) ([]byte, error) {
	w, err := toWire(msg)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(w)
}

// Decode parses a CBOR wire payload into a Message. It rejects
// payloads that name a variant this schema doesn't define, per the
// exhaustiveness design note in §9.
func Decode(payload []byte) (Message, error) {
	var w wireMessage
	if err := decMode.Unmarshal(payload, &w); err != nil {
		return Message{}, fmt.Errorf("protocol: decode: %w", err)
	}
	return fromWire(w)
}

func toWire(msg Message) (wireMessage, error) {
	switch c := msg.Content.(type) {
	case Handshake:
		return wireMessage{
			Which:     whichHandshake,
			Handshake: &wireHandshake{Type: uint8(c.Type)},
		}, nil
	case ControlPacket:
		wc, err := controlToWire(c)
		if err != nil {
			return wireMessage{}, err
		}
		return wireMessage{Which: whichControl, Control: &wc}, nil
	default:
		return wireMessage{}, fmt.Errorf("protocol: encode: unknown content type %T", msg.Content)
	}
}

func controlToWire(c ControlPacket) (wireControlPacket, error) {
	wc := wireControlPacket{Address: c.Address}
	switch cmd := c.Command.(type) {
	case Drive:
		wc.Which = whichDrive
		wc.Drive = &wireDrive{Direction: uint8(cmd.Direction), Speed: cmd.Speed & 0x1F}
	case Halt:
		wc.Which = whichHalt
	case EmergencyStop:
		wc.Which = whichEmergencyStop
	case Light:
		wc.Which = whichLight
		wc.Light = &wireLight{On: cmd.On}
	default:
		return wireControlPacket{}, fmt.Errorf("protocol: encode: unknown command type %T", c.Command)
	}
	return wc, nil
}

func fromWire(w wireMessage) (Message, error) {
	switch w.Which {
	case whichHandshake:
		if w.Handshake == nil {
			return Message{}, errors.New("protocol: decode: handshake variant missing payload")
		}
		return Message{Content: Handshake{Type: HandshakeType(w.Handshake.Type)}}, nil
	case whichControl:
		if w.Control == nil {
			return Message{}, errors.New("protocol: decode: control variant missing payload")
		}
		cmd, err := commandFromWire(*w.Control)
		if err != nil {
			return Message{}, err
		}
		return Message{Content: ControlPacket{Address: w.Control.Address, Command: cmd}}, nil
	default:
		return Message{}, fmt.Errorf("protocol: decode: unknown content variant %d", w.Which)
	}
}

func commandFromWire(wc wireControlPacket) (Command, error) {
	switch wc.Which {
	case whichDrive:
		if wc.Drive == nil {
			return nil, errors.New("protocol: decode: drive variant missing payload")
		}
		return Drive{Direction: Direction(wc.Drive.Direction), Speed: wc.Drive.Speed & 0x1F}, nil
	case whichHalt:
		return Halt{}, nil
	case whichEmergencyStop:
		return EmergencyStop{}, nil
	case whichLight:
		if wc.Light == nil {
			return nil, errors.New("protocol: decode: light variant missing payload")
		}
		return Light{On: wc.Light.On}, nil
	default:
		return nil, fmt.Errorf("protocol: decode: unknown command variant %d", wc.Which)
	}
}

// ReadFrame reads one length-prefixed frame from r into buf and
// returns the payload length. buf must be at least MaxMessageSize
// bytes. If the announced length exceeds len(buf), the frame's bytes
// are drained from r and ErrOversizeFrame is returned so the caller
// can silently continue to the next frame without losing sync (§4.1).
// Any other returned error is a genuine stream failure.
func ReadFrame(r io.Reader, buf []byte) (int, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return 0, err
	}
	length := binary.LittleEndian.Uint32(lenBuf[:])
	if uint64(length) > uint64(len(buf)) {
		if _, err := io.CopyN(io.Discard, r, int64(length)); err != nil {
			return 0, err
		}
		return 0, ErrOversizeFrame
	}
	if _, err := io.ReadFull(r, buf[:length]); err != nil {
		return 0, err
	}
	return int(length), nil
}

// WriteFrame writes payload to w prefixed by its 4-byte little-endian
// length.
func WriteFrame(w io.Writer, payload []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}
