package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dccbridge.dev/protocol"
)

func sendMessage(device string, logger *log.Logger, msg protocol.Message) error {
	port, err := openDeviceWithRetry(device)
	if err != nil {
		return err
	}
	defer port.Close()

	payload, err := protocol.Encode(msg)
	if err != nil {
		return fmt.Errorf("hostprobe: encode: %w", err)
	}
	if err := protocol.WriteFrame(port, payload); err != nil {
		return fmt.Errorf("hostprobe: write: %w", err)
	}
	logger.Debug("sent message", "content", fmt.Sprintf("%#v", msg.Content))
	return nil
}

func newHandshakeCmd(device *string, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "handshake",
		Short: "send a handshake request and wait for the device's response frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			port, err := openDeviceWithRetry(*device)
			if err != nil {
				return err
			}
			defer port.Close()

			payload, err := protocol.Encode(protocol.Message{Content: protocol.Handshake{Type: protocol.HandshakeRequest}})
			if err != nil {
				return fmt.Errorf("hostprobe: encode: %w", err)
			}
			if err := protocol.WriteFrame(port, payload); err != nil {
				return fmt.Errorf("hostprobe: write: %w", err)
			}

			buf := make([]byte, protocol.MaxMessageSize)
			n, err := protocol.ReadFrame(port, buf)
			if err != nil {
				return fmt.Errorf("hostprobe: read response: %w", err)
			}
			reply, err := protocol.Decode(buf[:n])
			if err != nil {
				return fmt.Errorf("hostprobe: decode response: %w", err)
			}
			hs, ok := reply.Content.(protocol.Handshake)
			if !ok || hs.Type != protocol.HandshakeResponse {
				return fmt.Errorf("hostprobe: unexpected reply %#v", reply.Content)
			}
			logger.Info("device responded to handshake")
			return nil
		},
	}
}

func newDriveCmd(device *string, logger *log.Logger) *cobra.Command {
	var address uint8
	var speed uint8
	var backward bool
	cmd := &cobra.Command{
		Use:   "drive",
		Short: "command a decoder to a speed step and direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := protocol.Forward
			if backward {
				direction = protocol.Backward
			}
			msg := protocol.Message{Content: protocol.ControlPacket{
				Address: address,
				Command: protocol.Drive{Direction: direction, Speed: speed},
			}}
			return sendMessage(*device, logger, msg)
		},
	}
	cmd.Flags().Uint8Var(&address, "address", 3, "decoder address (1-254)")
	cmd.Flags().Uint8Var(&speed, "speed", 0, "speed step (0-31)")
	cmd.Flags().BoolVar(&backward, "backward", false, "drive in reverse")
	return cmd
}

func newHaltCmd(device *string, logger *log.Logger) *cobra.Command {
	var address uint8
	cmd := &cobra.Command{
		Use:   "halt",
		Short: "halt a decoder without cutting power",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := protocol.Message{Content: protocol.ControlPacket{Address: address, Command: protocol.Halt{}}}
			return sendMessage(*device, logger, msg)
		},
	}
	cmd.Flags().Uint8Var(&address, "address", 3, "decoder address (1-254)")
	return cmd
}

func newEStopCmd(device *string, logger *log.Logger) *cobra.Command {
	var address uint8
	cmd := &cobra.Command{
		Use:   "estop",
		Short: "send an emergency stop",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := protocol.Message{Content: protocol.ControlPacket{Address: address, Command: protocol.EmergencyStop{}}}
			return sendMessage(*device, logger, msg)
		},
	}
	cmd.Flags().Uint8Var(&address, "address", 3, "decoder address (1-254)")
	return cmd
}

func newLightsCmd(device *string, logger *log.Logger) *cobra.Command {
	var address uint8
	var on bool
	cmd := &cobra.Command{
		Use:   "lights",
		Short: "switch a decoder's function-0 output on or off",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := protocol.Message{Content: protocol.ControlPacket{Address: address, Command: protocol.Light{On: on}}}
			return sendMessage(*device, logger, msg)
		},
	}
	cmd.Flags().Uint8Var(&address, "address", 3, "decoder address (1-254)")
	cmd.Flags().BoolVar(&on, "on", true, "light state")
	return cmd
}
