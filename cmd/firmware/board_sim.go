//go:build !tinygo && !periph

package main

import (
	"os"

	"dccbridge.dev/board"
)

// newBoard wires the software-simulation backend to the process's own
// stdin/stdout when firmware is built as an ordinary host binary (a
// convenience for local smoke-testing; production builds use tinygo or
// periph).
func newBoard() (board.Board, error) {
	return board.NewSimBoard(stdioReadWriter{}), nil
}

type stdioReadWriter struct{}

func (stdioReadWriter) Read(p []byte) (int, error)  { return os.Stdin.Read(p) }
func (stdioReadWriter) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
