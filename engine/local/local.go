// Package local implements a GameEngine for two players sharing one terminal.
package local

import (
	"fmt"
	"log/slog"
	"sync"

	"termflip/engine"
	"termflip/othello"
	"termflip/sgf"
	"termflip/types"
)

// LocalEngine implements the GameEngine interface on top of an in-process
// othello.Controller, optionally recording every game as SGF.
type LocalEngine struct {
	config     engine.GameConfig
	controller *othello.Controller
	boardState *types.BoardState
	history    []types.Move
	record     *sgf.GameRecord
	connected  bool

	moveCallback func(move types.Move, boardState *types.BoardState)
	endCallback  func(outcome othello.Outcome, boardState *types.BoardState)

	mu sync.Mutex
}

// NewLocalEngine creates a new local engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{config: cfg}
}

// Connect validates the configuration and sets up the first game.
func (l *LocalEngine) Connect() error {
	if err := l.config.Validate(); err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.newGame()
	l.connected = true
	slog.Info("game started",
		"size", l.controller.Size(),
		"black", l.config.PlayerBlack,
		"white", l.config.PlayerWhite,
		"custom_start", l.config.Start != nil)
	return nil
}

// newGame builds a fresh controller and record. Must be called while holding the lock.
func (l *LocalEngine) newGame() {
	if l.config.Start != nil {
		l.controller = othello.NewControllerFromBoard(l.config.Start, othello.Black)
	} else {
		l.controller = othello.NewController(l.config.BoardSize)
	}
	l.history = nil
	l.boardState = types.NewBoardState(l.controller)
	l.startRecord()
	if l.controller.IsOver() {
		// A start position nobody can move from is already decided.
		l.recordResult()
	}
}

// recordResult writes the final result to the record, if any. Must be called
// while holding the lock.
func (l *LocalEngine) recordResult() {
	if l.record == nil {
		return
	}
	if err := l.record.SetResult(l.controller.Outcome()); err != nil {
		slog.Warn("failed to record result", "err", err)
		return
	}
	slog.Info("game recorded", "path", l.record.FilePath, "moves", l.record.MoveCount())
}

// startRecord opens a new SGF record when recording is enabled. A record that
// cannot be created is logged and the game continues unrecorded.
func (l *LocalEngine) startRecord() {
	if l.record != nil {
		l.record.Close()
		l.record = nil
	}
	if !l.config.Record {
		return
	}

	rec, err := sgf.NewGameRecord(l.config.HistoryDir, l.controller.Size(), l.config.PlayerBlack, l.config.PlayerWhite)
	if err != nil {
		slog.Warn("game will not be recorded", "err", err)
		return
	}
	if l.config.Start != nil {
		if err := rec.AddSetupPosition(l.config.Start.Rows()); err != nil {
			slog.Warn("failed to record setup position", "err", err)
		}
	}
	l.record = rec
	slog.Debug("recording game", "path", rec.FilePath, "id", rec.GameID)
}

// GetBoardState returns the current board state.
func (l *LocalEngine) GetBoardState() *types.BoardState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.boardState
}

// PlayMove plays a move for the side to move at the given coordinates.
func (l *LocalEngine) PlayMove(x, y int) error {
	l.mu.Lock()

	if !l.connected {
		l.mu.Unlock()
		return engine.ErrNotConnected
	}
	if l.controller.IsOver() {
		l.mu.Unlock()
		return engine.ErrGameOver
	}

	size := l.controller.Size()
	if x < 0 || x >= size || y < 0 || y >= size {
		l.mu.Unlock()
		return fmt.Errorf("%w: (%d, %d) is off the board", engine.ErrIllegalMove, x, y)
	}

	side := l.controller.Turn()
	if !l.controller.AttemptMove(x, y) {
		l.mu.Unlock()
		slog.Debug("rejected move", "side", side, "pos", othello.PosName(x, y))
		return fmt.Errorf("%w: %s cannot play %s", engine.ErrIllegalMove, side, othello.PosName(x, y))
	}

	move := types.Move{X: x, Y: y, Side: side}
	l.history = append(l.history, move)
	if l.record != nil {
		if err := l.record.AddMove(x, y, side); err != nil {
			slog.Warn("failed to record move", "move", move.String(), "err", err)
		}
	}

	state := types.NewBoardState(l.controller)
	state.MoveNumber = len(l.history)
	state.LastMove = othello.Pos{X: x, Y: y}
	l.boardState = state
	slog.Debug("move played", "n", state.MoveNumber, "side", side, "pos", move.String(),
		"black", state.Black, "white", state.White, "passed", state.Passed)

	finished := l.controller.IsOver()
	outcome := l.controller.Outcome()
	if finished {
		l.recordResult()
		slog.Info("game over", "result", state.Outcome, "moves", len(l.history))
	}
	moveCallback, endCallback := l.moveCallback, l.endCallback
	l.mu.Unlock()

	// Notify callbacks outside the lock so they may query the engine.
	if moveCallback != nil {
		moveCallback(move, state)
	}
	if finished && endCallback != nil {
		endCallback(outcome, state)
	}
	return nil
}

// Reset starts the game over from its starting position. The end callback
// fires straight away when that position is already decided.
func (l *LocalEngine) Reset() error {
	l.mu.Lock()

	if !l.connected {
		l.mu.Unlock()
		return engine.ErrNotConnected
	}
	l.newGame()
	slog.Info("game reset", "size", l.controller.Size())

	finished := l.controller.IsOver()
	outcome, state, endCallback := l.controller.Outcome(), l.boardState, l.endCallback
	l.mu.Unlock()

	if finished && endCallback != nil {
		endCallback(outcome, state)
	}
	return nil
}

// History returns the moves played since the last reset.
func (l *LocalEngine) History() []types.Move {
	l.mu.Lock()
	defer l.mu.Unlock()
	moves := make([]types.Move, len(l.history))
	copy(moves, l.history)
	return moves
}

// RecordPath returns the SGF file of the current game, or "" when not recording.
func (l *LocalEngine) RecordPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record == nil {
		return ""
	}
	return l.record.FilePath
}

// OnMove registers a callback for when a move is played.
func (l *LocalEngine) OnMove(callback func(move types.Move, boardState *types.BoardState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (l *LocalEngine) OnGameEnd(callback func(outcome othello.Outcome, boardState *types.BoardState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.endCallback = callback
}

// Close flushes and closes the current record.
func (l *LocalEngine) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.record != nil {
		l.record.Close()
		l.record = nil
	}
	l.connected = false
}

var _ engine.GameEngine = (*LocalEngine)(nil)
