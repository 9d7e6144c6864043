// Command hostprobe is a diagnostic bench tool, not the production host
// application (§1, §10): it exercises the wire protocol end-to-end
// against a firmware device during bring-up — handshake, drive, halt,
// emergency-stop, lights.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	root := &cobra.Command{
		Use:   "hostprobe",
		Short: "send diagnostic commands to a dccbridge firmware device",
	}
	var device string
	root.PersistentFlags().StringVar(&device, "device", "", "serial device (defaults to platform-conventional port)")

	root.AddCommand(
		newHandshakeCmd(&device, logger),
		newDriveCmd(&device, logger),
		newHaltCmd(&device, logger),
		newEStopCmd(&device, logger),
		newLightsCmd(&device, logger),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
