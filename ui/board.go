// Package ui specifies custom controls for tview to assist in playing Othello in the terminal.
package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
	"termflip/othello"
	"termflip/types"
)

// Indexes into OthelloBoardUI.styles.
const (
	styleBoard = iota
	styleBoardAlt
	styleBlack
	styleWhite
	styleCursorFG
	styleCursorBG
	styleLastPlayed
	styleLine
	styleHint
)

type OthelloBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selX       int
	selY       int
	showHints  bool
	message    string
	players    [2]string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
	onGameEnd  func(outcome othello.Outcome, result string)
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *OthelloBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *OthelloBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *OthelloBoardUI) IsFocusMode() bool {
	return g.focusMode
}

// SetGameEndFunc registers a function called once a game has ended.
func (g *OthelloBoardUI) SetGameEndFunc(f func(outcome othello.Outcome, result string)) {
	g.onGameEnd = f
}

// SetShowHints toggles the legal move markers.
func (g *OthelloBoardUI) SetShowHints(show bool) {
	g.showHints = show
}

// SetPlayers sets the names shown for each side.
func (g *OthelloBoardUI) SetPlayers(black, white string) {
	g.players = [2]string{black, white}
	if g.infoPanel != nil {
		g.infoPanel.SetPlayers(black, white)
	}
}

func (g *OthelloBoardUI) SelectedTile() *othello.Pos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &othello.Pos{X: g.selX, Y: g.selY}
}

func (g *OthelloBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX = g.BoardState.LastMove.X
		g.selY = g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			// Nothing played yet, start on the first legal move
			g.selX, g.selY = g.BoardState.Width()/2, g.BoardState.Height()/2
			if len(g.BoardState.LegalMoves) > 0 {
				g.selX, g.selY = g.BoardState.LegalMoves[0].X, g.BoardState.LegalMoves[0].Y
			}
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *OthelloBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewOthelloBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *OthelloBoardUI {
	board := &OthelloBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
		showHints:  c.Game.ShowHints,
		players:    [2]string{c.Game.PlayerBlack, c.Game.PlayerWhite},
	}
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *OthelloBoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	state := g.BoardState
	if state == nil || state.Width() == 0 {
		return x, y, 1, 1
	}
	// 2 characters per cell for square appearance
	boardW, boardH := state.Width()*2, state.Height()

	for boardY := 0; boardY < state.Height(); boardY++ {
		for boardX := 0; boardX < state.Width(); boardX++ {
			bg := g.styles[styleBoard]
			if g.cfg.Theme.Checkered && (boardX+boardY)%2 == 1 {
				bg = g.styles[styleBoardAlt]
			}

			drawRune := g.cfg.Theme.Symbols.Empty
			fg := g.styles[styleLine]
			switch state.Board[boardY][boardX] {
			case othello.Black:
				drawRune, fg = g.cfg.Theme.Symbols.BlackDisk, g.styles[styleBlack]
			case othello.White:
				drawRune, fg = g.cfg.Theme.Symbols.WhiteDisk, g.styles[styleWhite]
			default:
				if g.showHints && state.IsLegal(boardX, boardY) {
					drawRune, fg = g.cfg.Theme.Symbols.Hint, g.styles[styleHint]
				}
			}

			if boardX == g.selX && boardY == g.selY {
				if g.cfg.Theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
				}
				if state.Board[boardY][boardX] == othello.Empty {
					fg = g.styles[styleCursorFG]
				}
			} else if boardX == state.LastMove.X && boardY == state.LastMove.Y && g.cfg.Theme.DrawLastPlayedBackground {
				bg = g.styles[styleLastPlayed]
			}

			drawDiskCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, boardX, boardY, x+4, y)
		}
	}
	drawCoordinates(screen, x, y, g)
	// Add offset for coordinate display
	return x, y, boardW + 4, boardH + 2
}

// ConnectEngine connects the board to a game engine.
func (g *OthelloBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.eng = e
	g.message = ""
	g.ResetSelection()

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(move types.Move, boardState *types.BoardState) {
		g.BoardState = boardState
		g.refreshHint()
		g.redraw()
	})

	e.OnGameEnd(func(outcome othello.Outcome, boardState *types.BoardState) {
		g.BoardState = boardState
		g.ResetSelection()
		g.refreshHint()
		if g.onGameEnd != nil {
			g.onGameEnd(outcome, boardState.Outcome)
		}
		g.redraw()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

func (g *OthelloBoardUI) redraw() {
	if g.app == nil {
		return
	}
	// Spawn goroutine to avoid deadlock when called from the event loop
	go func() {
		g.app.QueueUpdateDraw(func() {})
	}()
}

// PlayMove plays a move for the side to move at the given coordinates.
func (g *OthelloBoardUI) PlayMove(x, y int) {
	if g.eng == nil {
		return
	}
	err := g.eng.PlayMove(x, y)
	switch {
	case err == nil:
		g.message = ""
	case errors.Is(err, engine.ErrIllegalMove):
		g.message = fmt.Sprintf("%s is not a legal move", othello.PosName(x, y))
	case errors.Is(err, engine.ErrGameOver):
		g.message = "The game is over"
	default:
		slog.Error("play move", "err", err)
		g.message = err.Error()
	}
	g.refreshHint()
}

// Reset starts the current game over.
func (g *OthelloBoardUI) Reset() {
	if g.eng == nil {
		return
	}
	if err := g.eng.Reset(); err != nil {
		slog.Error("reset game", "err", err)
		return
	}
	g.message = ""
	g.ResetSelection()
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// History returns the moves of the current game.
func (g *OthelloBoardUI) History() []types.Move {
	if g.eng == nil {
		return nil
	}
	return g.eng.History()
}

// RecordPath returns the file the current game is saved to, if any.
func (g *OthelloBoardUI) RecordPath() string {
	if g.eng == nil {
		return ""
	}
	return g.eng.RecordPath()
}

// Close disconnects the engine.
func (g *OthelloBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *OthelloBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		styleBoard:      tcell.PaletteColor(c.Theme.Colors.BoardColor),
		styleBoardAlt:   tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),
		styleBlack:      tcell.PaletteColor(c.Theme.Colors.BlackColor),
		styleWhite:      tcell.PaletteColor(c.Theme.Colors.WhiteColor),
		styleCursorFG:   tcell.PaletteColor(c.Theme.Colors.CursorColorFG),
		styleCursorBG:   tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		styleLastPlayed: tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),
		styleLine:       tcell.PaletteColor(c.Theme.Colors.LineColor),
		styleHint:       tcell.PaletteColor(c.Theme.Colors.HintColor),
	}
	g.cfg = c
}

func (g *OthelloBoardUI) sideName(d othello.Disk) string {
	name := g.players[1]
	if d == othello.Black {
		name = g.players[0]
	}
	if name == "" || name == d.String() {
		return d.String()
	}
	return fmt.Sprintf("%s (%s)", d, name)
}

func diskGlyph(d othello.Disk) string {
	if d == othello.White {
		return "○"
	}
	return "●"
}

func (g *OthelloBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
		g.infoPanel.SetHistory(g.History())
	}
	if g.hint == nil {
		return
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	state := g.BoardState
	var statusLine, controlsLine string

	if state.Finished() {
		statusLine = fmt.Sprintf("  Game over · %s", state.Outcome)
		controlsLine = "  r new game   q return to menu"
	} else {
		statusLine = fmt.Sprintf("  %s %s to move", diskGlyph(state.PlayerToMove), g.sideName(state.PlayerToMove))
		if state.Passed {
			statusLine += fmt.Sprintf(" · %s has no move and passes", state.PlayerToMove.Opponent())
		}
		if g.message != "" {
			statusLine += " · " + g.message
		}
		controlsLine = "  hjkl/↑↓←→ move   ⏎ play   r reset   f focus   q quit"
	}

	g.hint.SetText(statusLine + "\n" + controlsLine)
}

// IsFinished returns true if the game is over.
func (g *OthelloBoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

// drawDiskCell draws a cell (2 characters wide)
func drawDiskCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, ' ', nil, c)
}

// drawCoordinates writes column letters below the board and row numbers,
// counted from the top, to its left.
func drawCoordinates(s tcell.Screen, x, y int, ui *OthelloBoardUI) {
	w, h := ui.BoardState.Width(), ui.BoardState.Height()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[styleCursorBG])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[styleLastPlayed])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		s.SetContent(x+4+(ix*2), y+h+1, rune('a'+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		_style := style
		if iy == ui.selY {
			_style = highlight
		} else if iy == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + displayNum/10)
		}
		s.SetContent(x+1, y+iy, tensRune, nil, _style)
		s.SetContent(x+2, y+iy, rune('0'+displayNum%10), nil, _style)
	}
}
