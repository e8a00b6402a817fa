// Package types contains shared data structures for termflip.
package types

import (
	"fmt"

	"termflip/othello"
)

const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a snapshot of a game taken after each move, for the UI.
// Board is indexed as Board[y][x].
type BoardState struct {
	MoveNumber   int              `json:"move_number"`
	PlayerToMove othello.Disk     `json:"player_to_move"`
	Phase        string           `json:"phase"` // "playing", "finished"
	Board        [][]othello.Disk `json:"board"`
	LegalMoves   []othello.Pos    `json:"legal_moves"`
	Black        int              `json:"black"`
	White        int              `json:"white"`
	Passed       bool             `json:"passed"` // the opponent of PlayerToMove just passed
	Outcome      string           `json:"outcome"`
	LastMove     othello.Pos      `json:"last_move"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// IsLegal reports whether (x, y) is among the legal moves of the side to move.
func (b *BoardState) IsLegal(x, y int) bool {
	for _, m := range b.LegalMoves {
		if m.X == x && m.Y == y {
			return true
		}
	}
	return false
}

// FinalOutcome rebuilds the result from the disk counts in the snapshot.
func (b *BoardState) FinalOutcome() othello.Outcome {
	o := othello.Outcome{Black: b.Black, White: b.White}
	switch {
	case b.Black > b.White:
		o.Winner = othello.Black
	case b.White > b.Black:
		o.Winner = othello.White
	}
	return o
}

// HasLastMove reports whether a move has been played since the game started.
func (b *BoardState) HasLastMove() bool {
	return b.LastMove.X >= 0 && b.LastMove.Y >= 0
}

// NewBoardState captures the controller's current position.
func NewBoardState(c *othello.Controller) *BoardState {
	black, white := c.Score()
	state := &BoardState{
		PlayerToMove: c.Turn(),
		Phase:        PhasePlaying,
		Board:        c.Board().Rows(),
		LegalMoves:   c.LegalMoves(),
		Black:        black,
		White:        white,
		Passed:       c.Passed(),
		LastMove:     othello.Pos{X: -1, Y: -1},
	}
	if c.IsOver() {
		state.Phase = PhaseFinished
		state.LegalMoves = nil
		state.Outcome = DescribeOutcome(c.Outcome())
	}
	return state
}

// DescribeOutcome formats a final result for display, e.g. "Black wins 34-30".
func DescribeOutcome(o othello.Outcome) string {
	switch o.Winner {
	case othello.Black:
		return fmt.Sprintf("Black wins %d-%d", o.Black, o.White)
	case othello.White:
		return fmt.Sprintf("White wins %d-%d", o.White, o.Black)
	}
	return fmt.Sprintf("Draw %d-%d", o.Black, o.White)
}

// Move is one successful placement, kept for the move list and game records.
type Move struct {
	X    int          `json:"x"`
	Y    int          `json:"y"`
	Side othello.Disk `json:"side"`
}

func (m Move) String() string {
	return othello.PosName(m.X, m.Y)
}
