package ui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/othello"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	// Current selection
	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing grid color, false = editing board color
}

type paletteEntry struct {
	code int
	name string
}

// Felt tones for the playing surface
var boardColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Felt Green"},
	{29, "Sea Green"},
	{34, "Bright Green"},
	{35, "Jade"},
	{64, "Olive"},
	{65, "Moss"},
	{23, "Teal"},
	{24, "Deep Cyan"},
	{30, "Cyan"},
	{17, "Navy Blue"},
	{18, "Blue"},
	{52, "Dark Maroon"},
	{88, "Dark Red"},
	{94, "Saddle Brown"},
	{136, "Dark Brown"},
	{180, "Tan"},
	{236, "Charcoal"},
	{240, "Gray"},
}

// Grid colors for empty cells and the checkered alternate
var lineColors = []paletteEntry{
	{22, "Dark Green"},
	{28, "Felt Green"},
	{58, "Dark Olive"},
	{23, "Teal"},
	{17, "Navy Blue"},
	{52, "Dark Maroon"},
	{94, "Saddle Brown"},
	{232, "Black"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{244, "Medium Gray"},
	{16, "True Black"},
}

// Sample position for the preview board.
var previewBoard = mustPreview(
	"......",
	"..O...",
	"..OOX.",
	".XXO..",
	"...X..",
	"......",
)

func mustPreview(rows ...string) [][]othello.Disk {
	b, err := othello.ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b.Rows()
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)
	cc.populateColorList()

	// Selection changes preview, Enter applies
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		colors := cc.currentColors()
		if index < 0 || index >= len(colors) {
			return
		}
		if cc.editingLine {
			cc.selectedLineColor = colors[index].code
		} else {
			cc.selectedBoardColor = colors[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.currentColors()) {
			return
		}
		if cc.editingLine {
			cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
			cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedLineColor
			cc.save()
			// Switch back to board color selection
			cc.editingLine = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
		cc.save()
		if cc.onDone != nil {
			cc.onDone()
		}
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		slog.Warn("failed to save colors", "err", err)
	}
}

func (cc *ColorConfigUI) currentColors() []paletteEntry {
	if cc.editingLine {
		return lineColors
	}
	return boardColors
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	selected := cc.selectedBoardColor
	cc.colorList.SetTitle(" Select Board Color (Tab: switch to grid) ")
	if cc.editingLine {
		selected = cc.selectedLineColor
		cc.colorList.SetTitle(" Select Grid Color (Tab: switch to board) ")
	}

	for i, c := range cc.currentColors() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.currentColors() {
		if c.code == selected {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	size := len(previewBoard)
	if width < size*2+6 || height < size+4 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	lineColor := tcell.PaletteColor(cc.selectedLineColor)
	symbols := cc.cfg.Theme.Symbols

	emptyStyle := tcell.StyleDefault.Background(boardColor).Foreground(lineColor)
	blackStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor))
	whiteStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor))

	startX := x + 2
	startY := y + 1

	for row, line := range previewBoard {
		for col, disk := range line {
			style, char := emptyStyle, symbols.Empty
			switch disk {
			case othello.Black:
				style, char = blackStyle, symbols.BlackDisk
			case othello.White:
				style, char = whiteStyle, symbols.WhiteDisk
			}
			if cc.cfg.Theme.Checkered && (row+col)%2 == 1 {
				style = style.Background(lineColor)
			}
			drawDiskCell(screen, style, char, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Grid: %d", cc.selectedBoardColor, cc.selectedLineColor)
	if cc.editingLine {
		info = fmt.Sprintf("Grid: %d  Board: %d", cc.selectedLineColor, cc.selectedBoardColor)
	}
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and grid color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
