// Package engine defines the interface between the UI and a running game.
package engine

import (
	"errors"
	"fmt"

	"termflip/othello"
	"termflip/types"
)

var (
	// ErrIllegalMove is returned when the side to move cannot play the requested cell.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned for moves attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrNotConnected is returned when the engine is used before Connect.
	ErrNotConnected = errors.New("engine not connected")
)

// GameEngine defines the interface for playing a game of Othello.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays a move for the side to move at the given coordinates.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// Reset starts the game over on the same board size.
	Reset() error

	// History returns the moves played since the last reset.
	History() []types.Move

	// RecordPath returns the file the current game is saved to, or "" when
	// the game is not recorded.
	RecordPath() string

	// OnMove registers a callback for when a move is played.
	OnMove(func(move types.Move, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome othello.Outcome, boardState *types.BoardState))

	// Close shuts down the engine.
	Close()
}

// Supported board sizes offered by the setup screen.
var BoardSizes = []int{8, 10, 12}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize   int            // 8, 10 or 12 from the menu; any even size >= 4 from flags
	PlayerBlack string         // Display name for the side that opens
	PlayerWhite string         // Display name for the second side
	Record      bool           // Write an SGF record of the game
	HistoryDir  string         // Directory for SGF records
	Start       *othello.Board // Optional start position, Black to move
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:   8,
		PlayerBlack: "Black",
		PlayerWhite: "White",
	}
}

// Validate checks that a game can be started with this configuration.
func (c GameConfig) Validate() error {
	size := c.BoardSize
	if c.Start != nil {
		size = c.Start.Size()
	}
	if !othello.ValidSize(size) {
		return fmt.Errorf("unsupported board size %d: must be even and at least %d", size, othello.MinSize)
	}
	if c.Record && c.HistoryDir == "" {
		return errors.New("recording requires a history directory")
	}
	return nil
}
