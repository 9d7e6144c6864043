//go:build periph

package main

import "dccbridge.dev/board"

func newBoard() (board.Board, error) {
	return board.NewPeriphBoard()
}
