//go:build tinygo

package main

import "dccbridge.dev/board"

func newBoard() (board.Board, error) {
	return board.NewRP2040Board(), nil
}
