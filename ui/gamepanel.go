package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termflip/othello"
	"termflip/types"
)

// maxVisibleMoves is how many of the latest moves the info panel lists.
const maxVisibleMoves = 12

// GameInfoPanel displays scores and move history alongside the board.
type GameInfoPanel struct {
	box         *tview.TextView
	boardState  *types.BoardState
	history     []types.Move
	playerBlack string
	playerWhite string
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.refresh()
}

// SetHistory sets the moves listed under the scores.
func (p *GameInfoPanel) SetHistory(history []types.Move) {
	p.history = history
	p.refresh()
}

// SetPlayers sets the names shown next to the scores.
func (p *GameInfoPanel) SetPlayers(black, white string) {
	p.playerBlack, p.playerWhite = black, white
	p.refresh()
}

// Text returns the panel text without color tags.
func (p *GameInfoPanel) Text() string {
	return p.box.GetText(true)
}

func scoreLine(glyph, name string, count int, toMove bool) string {
	marker := " "
	if toMove {
		marker = "[yellow]>[-]"
	}
	return fmt.Sprintf("%s%s %-14.14s [white::b]%2d[-:-:-]\n", marker, glyph, tview.Escape(name), count)
}

// refresh updates the panel text.
func (p *GameInfoPanel) refresh() {
	if p.boardState == nil || p.boardState.Width() == 0 {
		p.box.SetText("")
		return
	}
	state := p.boardState

	var text string

	text += "[white::b]Score[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	playing := !state.Finished()
	text += scoreLine("●", orDefault(p.playerBlack, "Black"), state.Black, playing && state.PlayerToMove == othello.Black)
	text += scoreLine("○", orDefault(p.playerWhite, "White"), state.White, playing && state.PlayerToMove == othello.White)
	text += fmt.Sprintf("\n[white]Move:[-:-:-] %d\n", state.MoveNumber)
	if state.Finished() {
		text += fmt.Sprintf("[yellow]%s[-]\n", state.Outcome)
	}

	if len(p.history) > 0 {
		text += "\n[white::b]Moves[-:-:-]\n"
		text += "[dimgray]──────────────────────[-:-:-]\n"

		start := 0
		if len(p.history) > maxVisibleMoves {
			start = len(p.history) - maxVisibleMoves
		}

		for i := start; i < len(p.history); i++ {
			m := p.history[i]

			colorStr := "[white]B[-]"
			if m.Side == othello.White {
				colorStr = "[dimgray]W[-]"
			}

			marker := " "
			if i == len(p.history)-1 {
				marker = "[white]>[-]"
			}

			text += fmt.Sprintf("%s[dimgray]%3d.[-] %s %s\n", marker, i+1, colorStr, m)
		}

		if start > 0 {
			text += fmt.Sprintf("[dimgray]  ··· %d earlier[-]\n", start)
		}
	}

	p.box.SetText(text)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *OthelloBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *OthelloBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	infoPanel.SetPlayers(board.players[0], board.players[1])
	infoPanel.SetHistory(board.History())
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	// Horizontal flex: board | info panel
	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	// Board area on top, status bar at bottom
	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *OthelloBoardUI) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth := 8*2 + 4
	boardHeight := 8 + 2
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4 // 2 chars per cell + coordinates
		boardHeight = board.BoardState.Height() + 2 // + coordinates
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}
