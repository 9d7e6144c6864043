package main

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/tarm/serial"
)

// openDevice opens dev, or a platform-conventional default when dev is
// empty, mirroring seedhammer's driver/mjolnir.Open.
func openDevice(dev string) (io.ReadWriteCloser, error) {
	var candidates []string
	if dev != "" {
		candidates = append(candidates, dev)
	} else {
		switch runtime.GOOS {
		case "windows":
			candidates = append(candidates, "COM3")
		default:
			candidates = append(candidates, "/dev/ttyACM0", "/dev/ttyUSB0")
		}
	}
	var firstErr error
	for _, c := range candidates {
		port, err := serial.OpenPort(&serial.Config{Name: c, Baud: 115200})
		if err == nil {
			return port, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = errors.New("no device specified")
	}
	return nil, firstErr
}

// openDeviceWithRetry retries openDevice with exponential backoff, for
// bench sessions where the device may still be enumerating its USB
// stack when the probe starts.
func openDeviceWithRetry(dev string) (io.ReadWriteCloser, error) {
	var port io.ReadWriteCloser
	op := func() error {
		p, err := openDevice(dev)
		if err != nil {
			return err
		}
		port = p
		return nil
	}
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 5 * time.Second
	if err := backoff.Retry(op, b); err != nil {
		return nil, fmt.Errorf("hostprobe: open device: %w", err)
	}
	return port, nil
}
