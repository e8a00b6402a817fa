package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termflip/config"
	"termflip/engine"
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form *tview.Form
	flex *tview.Flex
	cfg  *config.Config

	boardSize   int
	playerBlack string
	playerWhite string
	showHints   bool
	record      bool
}

// NewGameSetup creates a new game setup form. The chosen settings become the
// defaults for the next launch.
func NewGameSetup(cfg *config.Config, onStart func(engine.GameConfig), onCancel func(), onColors func(), onHistory func()) *GameSetupUI {
	setup := &GameSetupUI{
		cfg:         cfg,
		boardSize:   cfg.Game.DefaultBoardSize,
		playerBlack: cfg.Game.PlayerBlack,
		playerWhite: cfg.Game.PlayerWhite,
		showHints:   cfg.Game.ShowHints,
		record:      cfg.Game.RecordGames,
	}

	sizeOptions := make([]string, len(engine.BoardSizes))
	sizeIndex := 0
	for i, size := range engine.BoardSizes {
		sizeOptions[i] = fmt.Sprintf("%dx%d", size, size)
		if size == setup.boardSize {
			sizeIndex = i
		}
	}
	setup.boardSize = engine.BoardSizes[sizeIndex]

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeOptions, sizeIndex, func(option string, index int) {
		if index >= 0 && index < len(engine.BoardSizes) {
			setup.boardSize = engine.BoardSizes[index]
		}
	})

	form.AddInputField("Black (moves first)", setup.playerBlack, 20, nil, func(text string) {
		setup.playerBlack = strings.TrimSpace(text)
	})

	form.AddInputField("White", setup.playerWhite, 20, nil, func(text string) {
		setup.playerWhite = strings.TrimSpace(text)
	})

	form.AddCheckbox("Show legal moves", setup.showHints, func(checked bool) {
		setup.showHints = checked
	})

	form.AddCheckbox("Record game", setup.record, func(checked bool) {
		setup.record = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("History", func() {
		if onHistory != nil {
			onHistory()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetLabelColor(MenuColors.Label)
	form.SetBorderColor(MenuColors.Border)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig builds the configuration for the current form values and
// remembers them as the new defaults.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = s.boardSize
	gameCfg.PlayerBlack = orDefault(s.playerBlack, gameCfg.PlayerBlack)
	gameCfg.PlayerWhite = orDefault(s.playerWhite, gameCfg.PlayerWhite)
	gameCfg.Record = s.record
	gameCfg.HistoryDir = config.HistoryDir()

	changed := s.cfg.Game.DefaultBoardSize != s.boardSize ||
		s.cfg.Game.PlayerBlack != gameCfg.PlayerBlack ||
		s.cfg.Game.PlayerWhite != gameCfg.PlayerWhite ||
		s.cfg.Game.ShowHints != s.showHints ||
		s.cfg.Game.RecordGames != s.record
	if changed {
		s.cfg.Game.DefaultBoardSize = s.boardSize
		s.cfg.Game.PlayerBlack = gameCfg.PlayerBlack
		s.cfg.Game.PlayerWhite = gameCfg.PlayerWhite
		s.cfg.Game.ShowHints = s.showHints
		s.cfg.Game.RecordGames = s.record
		if err := s.cfg.Save(); err != nil {
			slog.Warn("failed to save game settings", "err", err)
		}
	}
	return gameCfg
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
