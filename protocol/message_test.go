package protocol

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		msg  Message
	}{
		{"handshake request", Message{Content: Handshake{Type: HandshakeRequest}}},
		{"handshake response", Message{Content: Handshake{Type: HandshakeResponse}}},
		{"drive forward", Message{Content: ControlPacket{Address: 3, Command: Drive{Direction: Forward, Speed: 15}}}},
		{"drive backward", Message{Content: ControlPacket{Address: 3, Command: Drive{Direction: Backward, Speed: 31}}}},
		{"halt", Message{Content: ControlPacket{Address: 3, Command: Halt{}}}},
		{"emergency stop", Message{Content: ControlPacket{Address: 3, Command: EmergencyStop{}}}},
		{"light on", Message{Content: ControlPacket{Address: 7, Command: Light{On: true}}}},
		{"light off", Message{Content: ControlPacket{Address: 7, Command: Light{On: false}}}},
		{"idle-aliasing address", Message{Content: ControlPacket{Address: 0xFF, Command: Drive{Direction: Forward, Speed: 1}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			enc, err := Encode(c.msg)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if len(enc) > MaxMessageSize {
				t.Fatalf("encoded size %d exceeds MaxMessageSize %d", len(enc), MaxMessageSize)
			}
			got, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if diff := cmp.Diff(c.msg, got); diff != "" {
				t.Fatalf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandshakeResponseCanonical(t *testing.T) {
	a, err := Encode(Message{Content: Handshake{Type: HandshakeResponse}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(Message{Content: Handshake{Type: HandshakeResponse}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("encoding of the canonical RESPONSE is not deterministic: %x vs %x", a, b)
	}
}

func TestDecodeRejectsUnknownVariant(t *testing.T) {
	w := wireMessage{Which: 7}
	enc, err := encMode.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Decode(enc); err == nil {
		t.Fatal("Decode accepted an unknown content variant")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xff, 0x00, 0x11, 0x22}); err == nil {
		t.Fatal("Decode accepted a malformed payload")
	}
}

func TestReadFrameOversize(t *testing.T) {
	var payload [MaxMessageSize + 1]byte
	var framed bytes.Buffer
	if err := WriteFrame(&framed, payload[:]); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	// Append a second, well-formed frame to confirm framing resyncs.
	second, err := Encode(Message{Content: Handshake{Type: HandshakeRequest}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := WriteFrame(&framed, second); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}

	buf := make([]byte, MaxMessageSize)
	if _, err := ReadFrame(&framed, buf); err != ErrOversizeFrame {
		t.Fatalf("ReadFrame = %v, want ErrOversizeFrame", err)
	}
	n, err := ReadFrame(&framed, buf)
	if err != nil {
		t.Fatalf("ReadFrame after oversize frame: %v", err)
	}
	msg, err := Decode(buf[:n])
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Message{Content: Handshake{Type: HandshakeRequest}}, msg); diff != "" {
		t.Fatalf("decoded message after resync (-want +got):\n%s", diff)
	}
}
