// Command firmware is the production entry point: idle-until-commanded
// behavior only (§9). It wires a board backend, launches the host-link
// receiver on its own goroutine (modeling core 1, §5), and runs the
// outer idle/dispatch loop on main (modeling core 0) forever.
package main

import (
	"log/slog"

	"dccbridge.dev/board"
	"dccbridge.dev/dcc"
	"dccbridge.dev/dispatch"
	"dccbridge.dev/mailbox"
	"dccbridge.dev/receiver"
)

func main() {
	log := slog.Default()

	b, err := newBoard()
	if err != nil {
		log.Error("board init failed", "error", err)
		return
	}

	box := mailbox.New()
	host := b.HostStream()

	go func() {
		r := receiver.New(host, box.Sender(), b.ActivityLED(), log)
		if err := r.Run(); err != nil {
			log.Error("host-link receiver stopped", "error", err)
		}
	}()

	tx := dcc.New(b.Pins(), b.Clock())
	d := dispatch.New(box.Receiver(), host, tx, log)

	for {
		tx.SendIdle()
		d.Dispatch()
	}
}
