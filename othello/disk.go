// Package othello implements the Othello board and the turn state machine
// that drives a two-player game on it.
package othello

import "fmt"

// Disk is the occupant of a single board cell.
type Disk uint8

const (
	Empty Disk = iota
	Black      // moves first
	White
)

// Opponent returns the other side. Empty has no opponent.
func (d Disk) Opponent() Disk {
	switch d {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("othello: opponent of %v", d))
}

func (d Disk) String() string {
	switch d {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Disk(%d)", uint8(d))
}

// Rune returns the ASCII symbol used by String and ParseBoard.
func (d Disk) Rune() rune {
	switch d {
	case Black:
		return 'X'
	case White:
		return 'O'
	}
	return '.'
}

// Pos is a board coordinate. X is the column and Y the row, both zero-based.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Pos) String() string {
	return PosName(p.X, p.Y)
}

func mustSide(side Disk) {
	if side != Black && side != White {
		panic(fmt.Sprintf("othello: %v is not a side", side))
	}
}
