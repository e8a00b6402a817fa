package ui

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/othello"
	"termflip/sgf"
	"termflip/types"
)

// gamePreview is the replayed end of one record.
type gamePreview struct {
	board   [][]othello.Disk
	outcome othello.Outcome
	err     error
}

func newGamePreview(path string) gamePreview {
	board, _, err := sgf.ReplayToEnd(path)
	if err != nil {
		slog.Warn("failed to replay game record", "path", path, "err", err)
		return gamePreview{err: err}
	}
	state := &types.BoardState{Board: board}
	for _, row := range board {
		for _, d := range row {
			switch d {
			case othello.Black:
				state.Black++
			case othello.White:
				state.White++
			}
		}
	}
	return gamePreview{board: board, outcome: state.FinalOutcome()}
}

// HistoryBrowserUI lists recorded games with a preview of the final position.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	games    []sgf.GameInfo
	previews map[string]gamePreview // by file path
	selected int
	onDone   func()
}

// NewHistoryBrowser creates a history screen for the records in dir.
func NewHistoryBrowser(dir string, onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		dir:      dir,
		onDone:   onDone,
		previews: make(map[string]gamePreview),
		gameList: tview.NewList(),
		preview:  tview.NewBox(),
		hint:     tview.NewTextView(),
	}

	hb.gameList.SetBorder(true).SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false).
		SetHighlightFullLine(true).
		SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label)).
		SetSelectedStyle(tcell.StyleDefault.Foreground(MenuColors.ButtonText).Background(MenuColors.ButtonFocus))
	hb.gameList.SetChangedFunc(func(index int, _, _ string, _ rune) {
		hb.selected = index
	})
	hb.gameList.SetInputCapture(hb.handleInput)

	hb.preview.SetBorder(true).SetTitle(" Final position ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	hb.hint.SetDynamicColors(true)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(hb.gameList, 44, 0, true).
			AddItem(hb.preview, 0, 1, false), 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.Refresh()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Games returns the records currently listed.
func (hb *HistoryBrowserUI) Games() []sgf.GameInfo {
	return hb.games
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	games, err := sgf.ListGames(hb.dir)
	if err != nil {
		slog.Warn("failed to list game history", "dir", hb.dir, "err", err)
	}
	hb.games = games
	hb.selected = 0
	hb.gameList.Clear()

	if len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games recorded yet[-]", "", 0, nil)
		hb.hint.SetText("  [dimgray]q[-] back")
		return
	}

	for _, g := range games {
		hb.gameList.AddItem(fmt.Sprintf("%s %2dx%-2d %s vs %s  %s",
			g.Date, g.BoardSize, g.BoardSize,
			tview.Escape(orDefault(g.PlayerBlack, "?")), tview.Escape(orDefault(g.PlayerWhite, "?")),
			sgf.DescribeResult(g.Result)), "", 0, nil)
	}
	hb.hint.SetText(fmt.Sprintf("  %d games   [dimgray]d[-] delete  [dimgray]q[-] back", len(games)))
}

func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	}
	if event.Key() == tcell.KeyRune && event.Rune() == 'd' {
		hb.deleteSelected()
		return nil
	}
	return event
}

func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}
	game := hb.games[hb.selected]
	if err := os.Remove(game.FilePath); err != nil {
		slog.Warn("failed to delete game record", "path", game.FilePath, "err", err)
		return
	}
	slog.Info("deleted game record", "path", game.FilePath, "id", game.GameID)
	delete(hb.previews, game.FilePath)
	hb.Refresh()
}

func (hb *HistoryBrowserUI) previewFor(game sgf.GameInfo) gamePreview {
	p, ok := hb.previews[game.FilePath]
	if !ok {
		p = newGamePreview(game.FilePath)
		hb.previews[game.FilePath] = p
	}
	return p
}

// drawPreview renders the selected game's final position, two columns per
// cell, with the disk counts and the recorded result underneath.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return x, y, width, height
	}
	game := hb.games[hb.selected]
	p := hb.previewFor(game)

	left, top := x+2, y+1
	dim := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	if p.err != nil {
		drawText(screen, left, top, "Record cannot be replayed", dim)
		return x, y, width, height
	}

	size := len(p.board)
	if width < size*2+4 || height < size+7 {
		drawText(screen, left, top, "Enlarge the window to preview", dim)
		return x, y, width, height
	}

	cellStyle := map[othello.Disk]tcell.Style{
		othello.Empty: tcell.StyleDefault.Foreground(tcell.PaletteColor(240)),
		othello.Black: tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true),
		othello.White: tcell.StyleDefault.Foreground(tcell.PaletteColor(250)),
	}
	cellRune := map[othello.Disk]rune{othello.Empty: '·', othello.Black: '●', othello.White: '○'}
	for by, row := range p.board {
		for bx, d := range row {
			screen.SetContent(left+bx*2, top+by, cellRune[d], nil, cellStyle[d])
		}
	}

	line := top + size + 1
	text := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	drawText(screen, left, line, fmt.Sprintf("%dx%d, %d moves", game.BoardSize, game.BoardSize, game.MoveCount), text)
	drawText(screen, left, line+1, fmt.Sprintf("● %s  %d", orDefault(game.PlayerBlack, "Black"), p.outcome.Black), dim)
	drawText(screen, left, line+2, fmt.Sprintf("○ %s  %d", orDefault(game.PlayerWhite, "White"), p.outcome.White), dim)

	result := sgf.DescribeResult(game.Result)
	if result == "Unfinished" {
		result += ", " + types.DescribeOutcome(p.outcome) + " on the board"
	}
	drawText(screen, left, line+3, "Result: "+result, tcell.StyleDefault.Foreground(tcell.PaletteColor(109)))
	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
